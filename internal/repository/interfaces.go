package repository

import (
	"context"

	"event-voting-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	// Delete removes the project and its votes atomically, returning the number of votes removed
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// DeviceRepositoryInterface defines the interface for device repository operations
type DeviceRepositoryInterface interface {
	GetByHash(ctx context.Context, deviceHash string) (*models.Device, error)
	Create(ctx context.Context, device *models.Device) error
	DeleteAll(ctx context.Context) (int64, error)
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	HasVoted(ctx context.Context, projectID, deviceHash string) (bool, error)
	// Insert stores vote and, when newDevice is non-nil, registers the device in the same transaction
	Insert(ctx context.Context, vote *models.Vote, newDevice *models.Device) error
	List(ctx context.Context, filter VoteFilter) ([]models.Vote, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// JoinedVoteLister is implemented by vote stores that can join votes with projects and filter in one query
type JoinedVoteLister interface {
	ListJoined(ctx context.Context, filter VoteFilter) ([]models.JoinedVote, error)
}

// ActivityLogRepositoryInterface defines the interface for audit log operations
type ActivityLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	GetRecent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// SettingRepositoryInterface defines the interface for runtime settings
type SettingRepositoryInterface interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}
