package repository

import (
	"context"
	"strings"
	"time"

	"event-voting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteFilter narrows vote listings. Zero values mean "no constraint".
type VoteFilter struct {
	ProjectID string
	MinScore  *int
	MaxScore  *int
	From      *time.Time
	To        *time.Time

	// Matched against the joined project; ListJoined only
	ProjectTitle string
	TeamNumber   string
	Department   string
	Sector       string
	VoterName    string
}

// HasProjectFilter reports whether any project attribute filter is set.
// Such filters exclude votes whose project no longer exists.
func (f VoteFilter) HasProjectFilter() bool {
	return f.ProjectTitle != "" || f.TeamNumber != "" || f.Department != "" || f.Sector != ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// HasVoted reports whether deviceHash already voted for projectID
func (r *VoteRepository) HasVoted(ctx context.Context, projectID, deviceHash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("project_id = ? AND device_hash = ?", projectID, deviceHash).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert stores a vote. When newDevice is non-nil it is created in the same
// transaction so a rejected vote never leaves a registered device behind.
func (r *VoteRepository) Insert(ctx context.Context, vote *models.Vote, newDevice *models.Device) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newDevice != nil {
			if err := tx.Create(newDevice).Error; err != nil {
				if isUniqueViolation(err, devicePrimaryKey) {
					return ErrDeviceExists
				}
				return err
			}
		}
		if err := tx.Create(vote).Error; err != nil {
			if isUniqueViolation(err, voteUniqueConstraint) {
				return ErrDuplicateVote
			}
			return err
		}
		return nil
	})
}

// List retrieves votes matching the numeric, project id and time filters, newest first
func (r *VoteRepository) List(ctx context.Context, filter VoteFilter) ([]models.Vote, error) {
	var votes []models.Vote
	query := r.db.WithContext(ctx).Model(&models.Vote{})

	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.MinScore != nil {
		query = query.Where("score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		query = query.Where("score <= ?", *filter.MaxScore)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	if err := query.Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// ListJoined retrieves votes joined with their project and applies every filter in SQL
func (r *VoteRepository) ListJoined(ctx context.Context, filter VoteFilter) ([]models.JoinedVote, error) {
	var rows []models.JoinedVote
	query := r.db.WithContext(ctx).
		Table("votes AS v").
		Select(`v.id, v.project_id, v.device_hash, v.voter_name, v.score, v.created_at,
			COALESCE(p.team_number, v.project_id) AS team_number,
			COALESCE(p.title, 'Unknown') AS project_title,
			COALESCE(p.department, '') AS department,
			COALESCE(p.sector, '') AS sector,
			p.id IS NOT NULL AS project_found`).
		Joins("LEFT JOIN projects AS p ON p.id = v.project_id")

	if filter.ProjectID != "" {
		query = query.Where("v.project_id = ?", filter.ProjectID)
	}
	if filter.MinScore != nil {
		query = query.Where("v.score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		query = query.Where("v.score <= ?", *filter.MaxScore)
	}
	if filter.From != nil {
		query = query.Where("v.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("v.created_at <= ?", *filter.To)
	}

	if filter.HasProjectFilter() {
		query = query.Where("p.id IS NOT NULL")
	}
	if filter.ProjectTitle != "" {
		query = query.Where("p.title ILIKE ?", containsPattern(filter.ProjectTitle))
	}
	if filter.TeamNumber != "" {
		query = query.Where("p.id = ?", filter.TeamNumber)
	}
	if filter.Department != "" {
		query = query.Where("p.department ILIKE ?", containsPattern(filter.Department))
	}
	if filter.Sector != "" {
		query = query.Where("p.sector ILIKE ?", containsPattern(filter.Sector))
	}
	if filter.VoterName != "" {
		query = query.Where("v.voter_name ILIKE ?", containsPattern(filter.VoterName))
	}

	if err := query.Order("v.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByID removes a single vote and reports whether it existed
func (r *VoteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Vote{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll removes every vote
func (r *VoteRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Vote{})
	return result.RowsAffected, result.Error
}
