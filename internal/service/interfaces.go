package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VoteServiceInterface defines the voter facing operations and single vote removal
type VoteServiceInterface interface {
	CheckEligibility(ctx context.Context, projectID, deviceHash string) (*EligibilityResponse, error)
	SubmitVote(ctx context.Context, req *SubmitVoteRequest, clientIP string) (*VoteReceipt, error)
	DeleteVote(ctx context.Context, voteID string, actor Actor) error
}

// ReportServiceInterface defines the admin reporting pipeline
type ReportServiceInterface interface {
	QueryVotes(ctx context.Context, query *VoteQuery, actor Actor) (*VoteReport, error)
}

// ProjectServiceInterface defines the project registry operations
type ProjectServiceInterface interface {
	Create(ctx context.Context, req *CreateProjectRequest, actor Actor) (*ProjectResponse, error)
	GetByID(ctx context.Context, id string) (*ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	Update(ctx context.Context, id string, req *UpdateProjectRequest, actor Actor) (*ProjectResponse, error)
	Delete(ctx context.Context, id string, actor Actor) error
	QRCode(ctx context.Context, id string) ([]byte, error)
}

// VotingStatusServiceInterface defines the global voting toggle
type VotingStatusServiceInterface interface {
	IsVotingEnabled(ctx context.Context) (bool, error)
	GetStatus(ctx context.Context) (*VotingStatus, error)
	SetStatus(ctx context.Context, enabled bool, actor Actor) (*VotingStatus, error)
}

// ActivityServiceInterface defines audit recording and retrieval
type ActivityServiceInterface interface {
	Record(ctx context.Context, entry ActivityEntry)
	Recent(ctx context.Context, limit int) ([]ActivityLogResponse, error)
}

// QRGenerator renders content as a PNG QR code
type QRGenerator interface {
	Generate(content string) ([]byte, error)
}
