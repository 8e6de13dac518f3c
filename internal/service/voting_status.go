package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/repository"

	"gorm.io/gorm"
)

const votingEnabledKey = "voting_enabled"

// VotingStatus represents whether voters may currently submit votes
type VotingStatus struct {
	Enabled   bool   `json:"enabled"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// SetVotingStatusRequest represents the admin request to open or close voting
type SetVotingStatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// VotingStatusService reads and toggles the global voting switch
type VotingStatusService struct {
	repo      repository.SettingRepositoryInterface
	activity  ActivityServiceInterface
	defaultOn bool
	now       func() time.Time
}

// NewVotingStatusService creates a new voting status service.
// defaultEnabled applies until an admin sets the switch.
func NewVotingStatusService(repo repository.SettingRepositoryInterface, activity ActivityServiceInterface, defaultEnabled bool) *VotingStatusService {
	return &VotingStatusService{
		repo:      repo,
		activity:  activity,
		defaultOn: defaultEnabled,
		now:       time.Now,
	}
}

// IsVotingEnabled reports whether submissions are accepted
func (s *VotingStatusService) IsVotingEnabled(ctx context.Context) (bool, error) {
	status, err := s.GetStatus(ctx)
	if err != nil {
		return false, err
	}
	return status.Enabled, nil
}

// GetStatus returns the current voting status
func (s *VotingStatusService) GetStatus(ctx context.Context) (*VotingStatus, error) {
	setting, err := s.repo.Get(ctx, votingEnabledKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VotingStatus{Enabled: s.defaultOn}, nil
		}
		return nil, fmt.Errorf("failed to get voting status: %w", err)
	}

	enabled, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid stored voting status %q: %w", setting.Value, err)
	}

	return &VotingStatus{
		Enabled:   enabled,
		UpdatedAt: formatTimestamp(setting.UpdatedAt),
		UpdatedBy: setting.UpdatedBy,
	}, nil
}

// SetStatus opens or closes voting
func (s *VotingStatusService) SetStatus(ctx context.Context, enabled bool, actor Actor) (*VotingStatus, error) {
	setting := &models.Setting{
		Key:       votingEnabledKey,
		Value:     strconv.FormatBool(enabled),
		UpdatedBy: actor.Name,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to update voting status: %w", err)
	}

	action := "close"
	if enabled {
		action = "open"
	}
	s.activity.Record(ctx, ActivityEntry{
		Type:    models.ActivityTypeVoting,
		Action:  action,
		Actor:   actor,
		Details: map[string]interface{}{"enabled": enabled},
	})

	return &VotingStatus{
		Enabled:   enabled,
		UpdatedAt: formatTimestamp(setting.UpdatedAt),
		UpdatedBy: setting.UpdatedBy,
	}, nil
}
