package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"event-voting-backend/internal/database/models"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/metrics"
	"event-voting-backend/internal/repository"

	"github.com/samber/lo"
)

// VoteQuery holds the admin filters as received. Blank values are ignored.
type VoteQuery struct {
	ProjectTitle string `form:"projectTitle"`
	TeamNumber   string `form:"teamNumber"`
	Department   string `form:"department"`
	Sector       string `form:"sector"`
	VoterName    string `form:"voterName"`
	MinScore     string `form:"minScore"`
	MaxScore     string `form:"maxScore"`
}

// VoteView is a vote enriched with its project attributes
type VoteView struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	DeviceHash   string `json:"deviceHash"`
	VoterName    string `json:"voterName"`
	Score        int    `json:"score"`
	CreatedAt    string `json:"createdAt"`
	TeamNumber   string `json:"teamNumber"`
	ProjectTitle string `json:"projectTitle"`
	Department   string `json:"department"`
	Sector       string `json:"sector"`
}

// VoteStats aggregates the filtered votes
type VoteStats struct {
	Count        int     `json:"count"`
	TotalScore   int     `json:"totalScore"`
	AverageScore float64 `json:"averageScore"`
}

// VoteReport is the result of an admin vote query
type VoteReport struct {
	Votes []VoteView `json:"votes"`
	Stats VoteStats  `json:"stats"`
}

// ReportService implements the admin filter, join and aggregation pipeline
type ReportService struct {
	voteRepo    repository.VoteRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	activity    ActivityServiceInterface
}

// NewReportService creates a new report service. When voteRepo also implements
// repository.JoinedVoteLister the join and filters run in the database.
func NewReportService(
	voteRepo repository.VoteRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	activity ActivityServiceInterface,
) *ReportService {
	return &ReportService{
		voteRepo:    voteRepo,
		projectRepo: projectRepo,
		activity:    activity,
	}
}

// QueryVotes returns the filtered, enriched votes and their statistics
func (s *ReportService) QueryVotes(ctx context.Context, query *VoteQuery, actor Actor) (*VoteReport, error) {
	filter, err := BuildVoteFilter(query)
	if err != nil {
		return nil, err
	}

	var rows []models.JoinedVote
	started := time.Now()
	if lister, ok := s.voteRepo.(repository.JoinedVoteLister); ok {
		rows, err = lister.ListJoined(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to query votes: %w", err)
		}
		metrics.ReportQueryDuration.WithLabelValues("joined").Observe(time.Since(started).Seconds())
	} else {
		rows, err = s.joinInMemory(ctx, filter)
		if err != nil {
			return nil, err
		}
		metrics.ReportQueryDuration.WithLabelValues("in_memory").Observe(time.Since(started).Seconds())
	}

	report := &VoteReport{
		Votes: lo.Map(rows, func(row models.JoinedVote, _ int) VoteView {
			return toVoteView(row)
		}),
		Stats: computeStats(rows),
	}

	if filter.HasProjectFilter() || filter.VoterName != "" {
		s.activity.Record(ctx, ActivityEntry{
			Type:   models.ActivityTypeFilter,
			Action: "apply",
			Actor:  actor,
			Details: map[string]interface{}{
				"filters":     filterDetails(filter),
				"resultCount": report.Stats.Count,
			},
		})
	}

	return report, nil
}

// joinInMemory fetches score-filtered votes and all projects, then joins and filters locally
func (s *ReportService) joinInMemory(ctx context.Context, filter repository.VoteFilter) ([]models.JoinedVote, error) {
	votes, err := s.voteRepo.List(ctx, repository.VoteFilter{
		ProjectID: filter.ProjectID,
		MinScore:  filter.MinScore,
		MaxScore:  filter.MaxScore,
		From:      filter.From,
		To:        filter.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	byID := lo.KeyBy(projects, func(p models.Project) string { return p.ID })

	return lo.FilterMap(votes, func(v models.Vote, _ int) (models.JoinedVote, bool) {
		project, found := byID[v.ProjectID]
		row := joinVote(v, project, found)
		return row, matchesFilter(row, filter)
	}), nil
}

func joinVote(v models.Vote, p models.Project, found bool) models.JoinedVote {
	row := models.JoinedVote{
		Vote:         v,
		TeamNumber:   v.ProjectID,
		ProjectTitle: "Unknown",
		ProjectFound: found,
	}
	if found {
		row.TeamNumber = p.TeamNumber
		row.ProjectTitle = p.Title
		row.Department = p.Department
		row.Sector = p.Sector
	}
	return row
}

func matchesFilter(row models.JoinedVote, f repository.VoteFilter) bool {
	if f.HasProjectFilter() && !row.ProjectFound {
		return false
	}
	if f.ProjectTitle != "" && !containsFold(row.ProjectTitle, f.ProjectTitle) {
		return false
	}
	if f.TeamNumber != "" && row.ProjectID != f.TeamNumber {
		return false
	}
	if f.Department != "" && !containsFold(row.Department, f.Department) {
		return false
	}
	if f.Sector != "" && !containsFold(row.Sector, f.Sector) {
		return false
	}
	if f.VoterName != "" && !containsFold(row.VoterName, f.VoterName) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func computeStats(rows []models.JoinedVote) VoteStats {
	stats := VoteStats{
		Count:      len(rows),
		TotalScore: lo.SumBy(rows, func(r models.JoinedVote) int { return r.Score }),
	}
	if stats.Count > 0 {
		stats.AverageScore = float64(stats.TotalScore) / float64(stats.Count)
	}
	return stats
}

func toVoteView(row models.JoinedVote) VoteView {
	return VoteView{
		ID:           row.ID.String(),
		ProjectID:    row.ProjectID,
		DeviceHash:   row.DeviceHash,
		VoterName:    row.VoterName,
		Score:        row.Score,
		CreatedAt:    formatTimestamp(row.CreatedAt),
		TeamNumber:   row.TeamNumber,
		ProjectTitle: row.ProjectTitle,
		Department:   row.Department,
		Sector:       row.Sector,
	}
}

// BuildVoteFilter trims the raw query, drops blank values and parses the score bounds
func BuildVoteFilter(query *VoteQuery) (repository.VoteFilter, error) {
	var filter repository.VoteFilter
	if query == nil {
		return filter, nil
	}

	filter.ProjectTitle = strings.TrimSpace(query.ProjectTitle)
	filter.TeamNumber = strings.TrimSpace(query.TeamNumber)
	filter.Department = strings.TrimSpace(query.Department)
	filter.Sector = strings.TrimSpace(query.Sector)
	filter.VoterName = strings.TrimSpace(query.VoterName)

	for _, f := range []struct{ field, value string }{
		{"projectTitle", filter.ProjectTitle},
		{"teamNumber", filter.TeamNumber},
		{"department", filter.Department},
		{"sector", filter.Sector},
		{"voterName", filter.VoterName},
	} {
		if err := checkText(f.field, f.value); err != nil {
			return filter, err
		}
	}

	var err error
	if filter.MinScore, err = parseScoreBound("minScore", query.MinScore); err != nil {
		return filter, err
	}
	if filter.MaxScore, err = parseScoreBound("maxScore", query.MaxScore); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseScoreBound(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(field, field+" must be an integer")
	}
	return &n, nil
}

func filterDetails(f repository.VoteFilter) map[string]interface{} {
	details := map[string]interface{}{}
	for key, value := range map[string]string{
		"projectTitle": f.ProjectTitle,
		"teamNumber":   f.TeamNumber,
		"department":   f.Department,
		"sector":       f.Sector,
		"voterName":    f.VoterName,
	} {
		if value != "" {
			details[key] = value
		}
	}
	if f.MinScore != nil {
		details["minScore"] = *f.MinScore
	}
	if f.MaxScore != nil {
		details["maxScore"] = *f.MaxScore
	}
	return details
}
