package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"event-voting-backend/internal/database/models"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/metrics"
	"event-voting-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const voteRecordedMessage = "Your vote has been recorded successfully."

// VoteService implements the eligibility and submission protocols
type VoteService struct {
	projectRepo repository.ProjectRepositoryInterface
	deviceRepo  repository.DeviceRepositoryInterface
	voteRepo    repository.VoteRepositoryInterface
	status      VotingStatusServiceInterface
	activity    ActivityServiceInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewVoteService creates a new vote service
func NewVoteService(
	projectRepo repository.ProjectRepositoryInterface,
	deviceRepo repository.DeviceRepositoryInterface,
	voteRepo repository.VoteRepositoryInterface,
	status VotingStatusServiceInterface,
	activity ActivityServiceInterface,
	validator *validator.Validate,
) *VoteService {
	return &VoteService{
		projectRepo: projectRepo,
		deviceRepo:  deviceRepo,
		voteRepo:    voteRepo,
		status:      status,
		activity:    activity,
		validator:   validator,
		now:         time.Now,
	}
}

// SubmitVoteRequest represents a vote submitted by a voter device.
// Score accepts a JSON number or a numeric string.
type SubmitVoteRequest struct {
	ProjectID  string      `json:"projectId" validate:"required,text,max=50"`
	DeviceHash string      `json:"deviceHash" validate:"required,text,max=255"`
	VoterName  string      `json:"voterName" validate:"text,max=40"`
	Score      json.Number `json:"score" swaggertype:"integer"`
}

// VoteReceipt is returned after a vote is recorded
type VoteReceipt struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// EligibilityResponse tells a device whether it may vote for a project.
// VoterName is the name locked to the device, if it has voted before.
type EligibilityResponse struct {
	Eligible  bool    `json:"eligible"`
	Reason    *string `json:"reason"`
	VoterName *string `json:"voterName"`
}

// CheckEligibility reports whether deviceHash may vote for projectID. It never changes state.
func (s *VoteService) CheckEligibility(ctx context.Context, projectID, deviceHash string) (*EligibilityResponse, error) {
	projectID = strings.TrimSpace(projectID)
	deviceHash = strings.TrimSpace(deviceHash)
	if projectID == "" || deviceHash == "" {
		return nil, apperrors.ErrMissingIdentifiers
	}
	if err := checkText("projectId", projectID); err != nil {
		return nil, err
	}
	if err := checkText("deviceHash", deviceHash); err != nil {
		return nil, err
	}

	if err := s.ensureProjectExists(ctx, projectID); err != nil {
		return nil, err
	}

	device, err := s.findDevice(ctx, deviceHash)
	if err != nil {
		return nil, err
	}
	var voterName *string
	if device != nil {
		name := device.VoterName
		voterName = &name
	}

	voted, err := s.voteRepo.HasVoted(ctx, projectID, deviceHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if voted {
		metrics.EligibilityChecks.WithLabelValues("duplicate").Inc()
		return ineligible(apperrors.ReasonDuplicateVote, voterName), nil
	}

	open, err := s.status.IsVotingEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		metrics.EligibilityChecks.WithLabelValues("closed").Inc()
		return ineligible(apperrors.ReasonVotingClosed, voterName), nil
	}

	metrics.EligibilityChecks.WithLabelValues("eligible").Inc()
	return &EligibilityResponse{Eligible: true, VoterName: voterName}, nil
}

func ineligible(reason string, voterName *string) *EligibilityResponse {
	return &EligibilityResponse{Eligible: false, Reason: &reason, VoterName: voterName}
}

// SubmitVote records a vote after every gate passes. No gate leaves partial state behind.
func (s *VoteService) SubmitVote(ctx context.Context, req *SubmitVoteRequest, clientIP string) (receipt *VoteReceipt, err error) {
	defer func() {
		if err != nil {
			metrics.VotesRejected.WithLabelValues(rejectionReason(err)).Inc()
		}
	}()

	req.ProjectID = strings.TrimSpace(req.ProjectID)
	req.DeviceHash = strings.TrimSpace(req.DeviceHash)
	req.VoterName = strings.TrimSpace(req.VoterName)

	if req.ProjectID == "" || req.DeviceHash == "" {
		return nil, apperrors.ErrMissingIdentifiers
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	score, err := ParseScore(req.Score)
	if err != nil {
		return nil, err
	}

	open, err := s.status.IsVotingEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, apperrors.ErrVotingClosed
	}

	if err := s.ensureProjectExists(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	device, err := s.findDevice(ctx, req.DeviceHash)
	if err != nil {
		return nil, err
	}
	voterName, newDevice, err := resolveVoterName(device, req.DeviceHash, req.VoterName)
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: s.now().UTC(),
		},
		ProjectID:  req.ProjectID,
		DeviceHash: req.DeviceHash,
		VoterName:  voterName,
		Score:      score,
	}
	if newDevice != nil {
		newDevice.CreatedAt = vote.CreatedAt
	}

	err = s.commit(ctx, vote, newDevice)
	if errors.Is(err, repository.ErrDeviceExists) {
		// Another request registered this device first; apply the name lock against it
		device, err = s.findDevice(ctx, req.DeviceHash)
		if err != nil {
			return nil, err
		}
		if device == nil {
			return nil, fmt.Errorf("device %s vanished after registration conflict", maskDeviceHash(req.DeviceHash))
		}
		if vote.VoterName, _, err = resolveVoterName(device, req.DeviceHash, req.VoterName); err != nil {
			return nil, err
		}
		err = s.commit(ctx, vote, nil)
	}
	if err != nil {
		return nil, err
	}

	metrics.VotesSubmitted.Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": vote.ProjectID,
		"vote_id":    vote.ID,
	}).Info("Vote recorded")
	s.activity.Record(ctx, ActivityEntry{
		Type:   models.ActivityTypeVote,
		Action: "submit",
		Actor:  Actor{Name: vote.VoterName, IPAddress: clientIP},
		Details: map[string]interface{}{
			"projectId":  vote.ProjectID,
			"score":      vote.Score,
			"voterName":  vote.VoterName,
			"deviceHash": maskDeviceHash(vote.DeviceHash),
			"ipAddress":  clientIP,
		},
	})

	return &VoteReceipt{
		ID:        vote.ID.String(),
		Message:   voteRecordedMessage,
		Timestamp: formatTimestamp(vote.CreatedAt),
	}, nil
}

// commit re-checks uniqueness and inserts. The storage constraint stays authoritative.
func (s *VoteService) commit(ctx context.Context, vote *models.Vote, newDevice *models.Device) error {
	voted, err := s.voteRepo.HasVoted(ctx, vote.ProjectID, vote.DeviceHash)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if voted {
		return apperrors.ErrDuplicateVote
	}

	if err := s.voteRepo.Insert(ctx, vote, newDevice); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateVote):
			return apperrors.ErrDuplicateVote
		case errors.Is(err, repository.ErrDeviceExists):
			return err
		default:
			return fmt.Errorf("failed to store vote: %w", err)
		}
	}
	return nil
}

// resolveVoterName applies the name lock. It returns the name of record and,
// for an unknown device, the device to register alongside the vote.
func resolveVoterName(device *models.Device, deviceHash, submitted string) (string, *models.Device, error) {
	if device == nil {
		if submitted == "" {
			return "", nil, apperrors.ErrVoterNameRequired
		}
		return submitted, &models.Device{DeviceHash: deviceHash, VoterName: submitted}, nil
	}
	if submitted != "" && submitted != device.VoterName {
		return "", nil, apperrors.ErrNameLocked
	}
	return device.VoterName, nil, nil
}

// DeleteVote removes a single vote
func (s *VoteService) DeleteVote(ctx context.Context, voteID string, actor Actor) error {
	id, err := uuid.Parse(strings.TrimSpace(voteID))
	if err != nil {
		return apperrors.NewValidationError("voteId", "voteId must be a valid UUID")
	}

	found, err := s.voteRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	if !found {
		return apperrors.ErrVoteNotFound
	}

	s.activity.Record(ctx, ActivityEntry{
		Type:    models.ActivityTypeVote,
		Action:  "delete",
		Actor:   actor,
		Details: map[string]interface{}{"voteId": id.String()},
	})
	return nil
}

// ParseScore accepts an integer in [MinScore, MaxScore] given as a JSON number or numeric string
func ParseScore(raw json.Number) (int, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, apperrors.NewValidationError("score", "score is required")
	}
	score, err := strconv.Atoi(s)
	if err != nil || score < MinScore || score > MaxScore {
		return 0, apperrors.ErrInvalidScore
	}
	return score, nil
}

func (s *VoteService) ensureProjectExists(ctx context.Context, projectID string) error {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	return nil
}

// findDevice returns nil without error for an unknown device
func (s *VoteService) findDevice(ctx context.Context, deviceHash string) (*models.Device, error) {
	device, err := s.deviceRepo.GetByHash(ctx, deviceHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

func rejectionReason(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return "validation"
	case apperrors.IsNotFound(err):
		return "project_not_found"
	case apperrors.IsConflict(err):
		return strings.ToLower(apperrors.ConflictReason(err))
	default:
		return "internal"
	}
}
