package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"event-voting-backend/internal/database/models"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService handles business logic for the project registry
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	qr        QRGenerator
	activity  ActivityServiceInterface
	validator *validator.Validate
	qrBaseURL string
	now       func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	qr QRGenerator,
	activity ActivityServiceInterface,
	validator *validator.Validate,
	qrBaseURL string,
) *ProjectService {
	return &ProjectService{
		repo:      repo,
		qr:        qr,
		activity:  activity,
		validator: validator,
		qrBaseURL: qrBaseURL,
		now:       time.Now,
	}
}

// CreateProjectRequest represents the request to register a project
type CreateProjectRequest struct {
	TeamNumber string `json:"teamNumber" yaml:"teamNumber" validate:"required,text,max=50"`
	Title      string `json:"title" yaml:"title" validate:"required,text,max=100"`
	Sector     string `json:"sector,omitempty" yaml:"sector" validate:"text,max=50"`
	Department string `json:"department,omitempty" yaml:"department" validate:"text,max=50"`
}

// UpdateProjectRequest represents a partial project update. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,text,max=100"`
	Sector     *string `json:"sector,omitempty" validate:"omitempty,text,max=50"`
	Department *string `json:"department,omitempty" validate:"omitempty,text,max=50"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID         string `json:"id"`
	TeamNumber string `json:"teamNumber"`
	Title      string `json:"title"`
	Sector     string `json:"sector"`
	Department string `json:"department"`
	VoteURL    string `json:"voteUrl"`
	QRCodeURL  string `json:"qrCodeUrl"`
	QRDataURL  string `json:"qrDataUrl,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// Create registers a project and renders its QR code
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest, actor Actor) (*ProjectResponse, error) {
	req.TeamNumber = strings.TrimSpace(req.TeamNumber)
	req.Title = strings.TrimSpace(req.Title)
	req.Sector = strings.TrimSpace(req.Sector)
	req.Department = strings.TrimSpace(req.Department)

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	png, err := s.qr.Generate(VoteURL(s.qrBaseURL, req.TeamNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	now := s.now().UTC()
	project := &models.Project{
		ID:         req.TeamNumber,
		TeamNumber: req.TeamNumber,
		Title:      req.Title,
		Sector:     req.Sector,
		Department: req.Department,
		QRCode:     png,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectExists) {
			return nil, apperrors.ErrProjectExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", project.ID).Info("Project created")
	s.activity.Record(ctx, ActivityEntry{
		Type:   models.ActivityTypeProject,
		Action: "create",
		Actor:  actor,
		Details: map[string]interface{}{
			"projectId": project.ID,
			"title":     project.Title,
		},
	})

	resp := s.toResponse(project)
	resp.QRDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return resp, nil
}

// GetByID retrieves a project by team number
func (s *ProjectService) GetByID(ctx context.Context, id string) (*ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// List retrieves all projects
func (s *ProjectService) List(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses, nil
}

// Update applies a partial update. The team number is immutable.
func (s *ProjectService) Update(ctx context.Context, id string, req *UpdateProjectRequest, actor Actor) (*ProjectResponse, error) {
	if req.Title == nil && req.Sector == nil && req.Department == nil {
		return nil, apperrors.NewValidationError("", "at least one of title, sector or department must be provided")
	}
	trimPtr(req.Title)
	trimPtr(req.Sector)
	trimPtr(req.Department)
	if req.Title != nil && *req.Title == "" {
		return nil, apperrors.NewValidationError("title", "title must not be empty")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := map[string]interface{}{"projectId": project.ID}
	if req.Title != nil {
		project.Title = *req.Title
		changed["title"] = project.Title
	}
	if req.Sector != nil {
		project.Sector = *req.Sector
		changed["sector"] = project.Sector
	}
	if req.Department != nil {
		project.Department = *req.Department
		changed["department"] = project.Department
	}
	project.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.activity.Record(ctx, ActivityEntry{
		Type:    models.ActivityTypeProject,
		Action:  "update",
		Actor:   actor,
		Details: changed,
	})

	return s.toResponse(project), nil
}

// Delete removes a project together with its votes and QR artifact
func (s *ProjectService) Delete(ctx context.Context, id string, actor Actor) error {
	if _, err := s.getProject(ctx, id); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id":    id,
		"votes_removed": removed,
	}).Info("Project deleted")
	s.activity.Record(ctx, ActivityEntry{
		Type:   models.ActivityTypeProject,
		Action: "delete",
		Actor:  actor,
		Details: map[string]interface{}{
			"projectId":    id,
			"votesRemoved": removed,
		},
	})
	return nil
}

// QRCode returns the stored PNG for a project, rendering it when missing
func (s *ProjectService) QRCode(ctx context.Context, id string) ([]byte, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(project.QRCode) > 0 {
		return project.QRCode, nil
	}

	png, err := s.qr.Generate(VoteURL(s.qrBaseURL, project.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}

func (s *ProjectService) getProject(ctx context.Context, id string) (*models.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.NewValidationError("projectId", "projectId is required")
	}
	if err := checkText("projectId", id); err != nil {
		return nil, err
	}
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) toResponse(p *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:         p.ID,
		TeamNumber: p.TeamNumber,
		Title:      p.Title,
		Sector:     p.Sector,
		Department: p.Department,
		VoteURL:    VoteURL(s.qrBaseURL, p.ID),
		QRCodeURL:  "/qr/" + url.PathEscape(p.ID) + ".png",
		CreatedAt:  formatTimestamp(p.CreatedAt),
		UpdatedAt:  formatTimestamp(p.UpdatedAt),
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
