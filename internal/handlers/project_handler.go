package handlers

import (
	"errors"
	"net/http"

	"costbook/internal/dto"
	apierrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProjectHandler handles project management endpoints
type ProjectHandler struct {
	projectService services.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project
// @Summary Create a project
// @Description Create a named container for proposal files
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse "Project created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 422 {object} errors.ErrorResponse "Name already in use"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	project, err := h.projectService.CreateProject(&req, userID, getClientIP(c))
	if err != nil {
		if errors.Is(err, services.ErrProjectAlreadyExists) {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Project name already in use"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, projectToResponse(project))
}

// GetProject returns a single project
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse "Project"
// @Failure 404 {object} errors.ErrorResponse "Project not found - PROJECT_001"
// @Router /api/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return SendError(c, apierrors.ProjectNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, projectToResponse(project))
}

// ListProjects returns a page of projects
// @Summary List projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ProjectListResponse "Projects"
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	projects, total, err := h.projectService.ListProjects(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, projectToResponse(&projects[i]))
	}

	return c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects: responses,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

func projectToResponse(project *models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
