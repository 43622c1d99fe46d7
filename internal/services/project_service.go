package services

import (
	"errors"
	"fmt"
	"log/slog"

	"costbook/internal/dto"
	"costbook/internal/models"
	"costbook/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project with this name already exists")
)

// ProjectService handles project management business logic
type ProjectService struct {
	projectRepo repositories.ProjectRepositoryInterface
	auditSvc    AuditServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	auditSvc AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ProjectServiceInterface {
	return &ProjectService{
		projectRepo: projectRepo,
		auditSvc:    auditSvc,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateProject creates a new project container for proposal files
func (s *ProjectService) CreateProject(req *dto.CreateProjectRequest, userID uuid.UUID, ipAddress string) (*models.Project, error) {
	existing, err := s.projectRepo.GetByName(req.Name)
	if err != nil && !errors.Is(err, repositories.ErrProjectNotFound) {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return nil, ErrProjectAlreadyExists
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.projectRepo.Create(project); err != nil {
		if errors.Is(err, repositories.ErrProjectAlreadyExists) {
			return nil, ErrProjectAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.auditSvc.LogProjectCreated(userID, project.ID, ipAddress); err != nil {
		// Non-critical: audit failure shouldn't block project creation
		s.logger.Warn("failed to audit project creation",
			"error", err,
			"project_id", project.ID)
	}

	s.metrics.IncrementCounter("project_created", nil)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects returns a page of projects with the total count
func (s *ProjectService) ListProjects(offset, limit int) ([]models.Project, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	projects, total, err := s.projectRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}
