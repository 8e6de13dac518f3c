package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "event_voting_http_requests_total",
	Help: "Total number of HTTP requests, by method, route and status",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "event_voting_http_request_duration_seconds",
	Help:    "Duration of HTTP requests, by method and route",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

var RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "event_voting_rate_limited_total",
	Help: "Total number of requests rejected by a rate limiter",
}, []string{"limiter"})

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
