package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var VotesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "event_voting_votes_submitted_total",
	Help: "Total number of votes accepted",
})

var VotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "event_voting_votes_rejected_total",
	Help: "Total number of vote submissions rejected, by reason",
}, []string{"reason"})

var EligibilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "event_voting_eligibility_checks_total",
	Help: "Total number of eligibility checks, by outcome",
}, []string{"result"})

var ReportQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "event_voting_report_query_duration_seconds",
	Help:    "Duration of admin vote report queries",
	Buckets: prometheus.DefBuckets,
}, []string{"strategy"})
