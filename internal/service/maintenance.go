package service

import (
	"context"
	"fmt"

	"event-voting-backend/internal/database"
	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/repository"

	"gorm.io/gorm"
)

// ResetSummary reports how many rows a full reset removed
type ResetSummary struct {
	Votes    int64 `json:"votes"`
	Devices  int64 `json:"devices"`
	Projects int64 `json:"projects"`
}

// DatabaseStatus describes schema version and row counts
type DatabaseStatus struct {
	SchemaVersion uint  `json:"schemaVersion"`
	Dirty         bool  `json:"dirty"`
	Projects      int64 `json:"projects"`
	Devices       int64 `json:"devices"`
	Votes         int64 `json:"votes"`
}

// MaintenanceService provides operator tasks run from the CLI
type MaintenanceService struct {
	db       *gorm.DB
	activity ActivityServiceInterface
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, activity ActivityServiceInterface) *MaintenanceService {
	return &MaintenanceService{db: db, activity: activity}
}

// Reset deletes every vote, device and project in one transaction
func (s *MaintenanceService) Reset(ctx context.Context, actor Actor) (*ResetSummary, error) {
	summary := &ResetSummary{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if summary.Votes, err = repository.NewVoteRepository(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete votes: %w", err)
		}
		if summary.Devices, err = repository.NewDeviceRepository(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete devices: %w", err)
		}
		if summary.Projects, err = repository.NewProjectRepository(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"votes":    summary.Votes,
		"devices":  summary.Devices,
		"projects": summary.Projects,
	}).Warn("All voting data removed")
	s.activity.Record(ctx, ActivityEntry{
		Type:   models.ActivityTypeSystem,
		Action: "reset",
		Actor:  actor,
		Details: map[string]interface{}{
			"votes":    summary.Votes,
			"devices":  summary.Devices,
			"projects": summary.Projects,
		},
	})
	return summary, nil
}

// Status pings the database and reports schema version and row counts
func (s *MaintenanceService) Status(ctx context.Context) (*DatabaseStatus, error) {
	if err := database.Ping(ctx, s.db); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	version, dirty, err := database.MigrationVersion(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	status := &DatabaseStatus{SchemaVersion: version, Dirty: dirty}

	db := s.db.WithContext(ctx)
	for _, c := range []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Project{}, &status.Projects},
		{&models.Device{}, &status.Devices},
		{&models.Vote{}, &status.Votes},
	} {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}
	return status, nil
}
