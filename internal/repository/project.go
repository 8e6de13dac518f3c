package repository

import (
	"context"

	"event-voting-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Create(project).Error
	if isUniqueViolation(err, projectPrimaryKey) {
		return ErrProjectExists
	}
	return err
}

// GetByID retrieves a project by its team number
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves all projects ordered by team number.
// The QR image column is left out.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Omit("qr_png").
		Order("team_number ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves the mutable attributes of a project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{ID: project.ID}).
		Select("title", "sector", "department", "qr_png", "updated_at").
		Updates(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a project and its votes in one transaction and reports how many votes went with it.
// Devices are kept.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (int64, error) {
	var votesRemoved int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		votes := tx.Where("project_id = ?", id).Delete(&models.Vote{})
		if votes.Error != nil {
			return votes.Error
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		votesRemoved = votes.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return votesRemoved, nil
}

// DeleteAll removes every project
func (r *ProjectRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{})
	return result.RowsAffected, result.Error
}
