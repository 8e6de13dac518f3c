package service

import (
	"context"
	"encoding/json"
	"fmt"

	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/repository"
)

// Activity log retrieval bounds
const (
	DefaultActivityLimit = 200
	MaxActivityLimit     = 1000
)

// ActivityEntry describes one audited action
type ActivityEntry struct {
	Type    string
	Action  string
	Actor   Actor
	Details map[string]interface{}
}

// ActivityLogResponse represents an audit record returned to admins
type ActivityLogResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Action    string          `json:"action"`
	Actor     string          `json:"actor"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	IPAddress string          `json:"ipAddress"`
	Timestamp string          `json:"timestamp"`
}

// ActivityService records and lists audit entries
type ActivityService struct {
	repo repository.ActivityLogRepositoryInterface
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityLogRepositoryInterface) *ActivityService {
	return &ActivityService{repo: repo}
}

// Record stores an audit entry. Failures are logged and never returned,
// so auditing cannot fail the operation being audited.
func (s *ActivityService) Record(ctx context.Context, entry ActivityEntry) {
	actor := entry.Actor.Name
	if actor == "" {
		actor = SystemActor.Name
	}
	ip := entry.Actor.IPAddress
	if ip == "" {
		ip = "unknown"
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"activity_type":   entry.Type,
		"activity_action": entry.Action,
		"actor":           actor,
		"ip":              ip,
	})

	var details json.RawMessage
	if len(entry.Details) > 0 {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			log.Warnf("Failed to encode activity details: %v", err)
		} else {
			details = raw
		}
	}

	record := &models.ActivityLog{
		Type:      entry.Type,
		Action:    entry.Action,
		Actor:     actor,
		Details:   details,
		IPAddress: ip,
	}

	// The request may be cancelled right after the primary write succeeded
	if err := s.repo.Create(context.WithoutCancel(ctx), record); err != nil {
		log.Errorf("Failed to store activity log: %v", err)
		return
	}
	log.Info("Activity recorded")
}

// Recent returns the newest audit entries, newest first
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]ActivityLogResponse, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	logs, err := s.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	responses := make([]ActivityLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = ActivityLogResponse{
			ID:        l.ID.String(),
			Type:      l.Type,
			Action:    l.Action,
			Actor:     l.Actor,
			Details:   l.Details,
			IPAddress: l.IPAddress,
			Timestamp: formatTimestamp(l.CreatedAt),
		}
	}
	return responses, nil
}
