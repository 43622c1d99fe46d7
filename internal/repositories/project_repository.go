package repositories

import (
	"errors"
	"fmt"

	"costbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepositoryInterface {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project in the database
func (r *ProjectRepository) Create(project *models.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}

	if err := r.db.Create(project).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrProjectAlreadyExists
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	project := &models.Project{ID: id}
	if err := r.db.First(project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return project, nil
}

// GetByName retrieves a project by its name
func (r *ProjectRepository) GetByName(name string) (*models.Project, error) {
	var project models.Project

	if err := r.db.Where("name = ?", name).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}

	return &project, nil
}

// List retrieves projects with pagination, newest first
func (r *ProjectRepository) List(offset, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// Update updates a project in the database
func (r *ProjectRepository) Update(project *models.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}

	if err := r.db.Save(project).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// Delete soft-deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
