package services

import (
	"errors"
	"log/slog"
	"testing"

	"costbook/internal/dto"
	"costbook/internal/models"
	"costbook/internal/repositories"
	"costbook/internal/repositories/repository_mocks"
	"costbook/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	projectRepo *repository_mocks.MockProjectRepositoryInterface
	auditSvc    *service_mocks.MockAuditServiceInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     ProjectServiceInterface
	userID      uuid.UUID
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.projectRepo = repository_mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.auditSvc = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewProjectService(s.projectRepo, s.auditSvc, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProjectServiceSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func (s *ProjectServiceTestSuite) TestCreateProject_Success() {
	req := &dto.CreateProjectRequest{
		Name:        "Harbor Bridge Retrofit",
		Description: "Structural retrofit bids for 2026",
	}

	s.projectRepo.EXPECT().GetByName(req.Name).Return(nil, repositories.ErrProjectNotFound)
	s.projectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(project *models.Project) error {
			project.ID = uuid.New()
			return nil
		})
	s.auditSvc.EXPECT().LogProjectCreated(s.userID, gomock.Any(), "10.0.0.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("project_created", nil)

	project, err := s.service.CreateProject(req, s.userID, "10.0.0.1")

	s.Require().NoError(err)
	s.Equal(req.Name, project.Name)
	s.Equal(req.Description, project.Description)
}

func (s *ProjectServiceTestSuite) TestCreateProject_DuplicateName() {
	req := &dto.CreateProjectRequest{Name: "Harbor Bridge Retrofit"}

	s.projectRepo.EXPECT().
		GetByName(req.Name).
		Return(&models.Project{ID: uuid.New(), Name: req.Name}, nil)

	project, err := s.service.CreateProject(req, s.userID, "10.0.0.1")

	s.ErrorIs(err, ErrProjectAlreadyExists)
	s.Nil(project)
}

func (s *ProjectServiceTestSuite) TestCreateProject_RaceOnCreate() {
	req := &dto.CreateProjectRequest{Name: "Harbor Bridge Retrofit"}

	s.projectRepo.EXPECT().GetByName(req.Name).Return(nil, repositories.ErrProjectNotFound)
	s.projectRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrProjectAlreadyExists)

	project, err := s.service.CreateProject(req, s.userID, "10.0.0.1")

	s.ErrorIs(err, ErrProjectAlreadyExists)
	s.Nil(project)
}

func (s *ProjectServiceTestSuite) TestCreateProject_AuditFailureDoesNotBlock() {
	req := &dto.CreateProjectRequest{Name: "Harbor Bridge Retrofit"}

	s.projectRepo.EXPECT().GetByName(req.Name).Return(nil, repositories.ErrProjectNotFound)
	s.projectRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.auditSvc.EXPECT().
		LogProjectCreated(s.userID, gomock.Any(), "10.0.0.1").
		Return(errors.New("audit store down"))
	s.metrics.EXPECT().IncrementCounter("project_created", nil)

	project, err := s.service.CreateProject(req, s.userID, "10.0.0.1")

	s.NoError(err)
	s.NotNil(project)
}

func (s *ProjectServiceTestSuite) TestGetProject_Success() {
	projectID := uuid.New()
	expected := &models.Project{ID: projectID, Name: "Harbor Bridge Retrofit"}

	s.projectRepo.EXPECT().GetByID(projectID).Return(expected, nil)

	project, err := s.service.GetProject(projectID)

	s.Require().NoError(err)
	s.Equal(expected, project)
}

func (s *ProjectServiceTestSuite) TestGetProject_NotFound() {
	projectID := uuid.New()

	s.projectRepo.EXPECT().GetByID(projectID).Return(nil, repositories.ErrProjectNotFound)

	project, err := s.service.GetProject(projectID)

	s.ErrorIs(err, ErrProjectNotFound)
	s.Nil(project)
}

func (s *ProjectServiceTestSuite) TestListProjects_Success() {
	projects := []models.Project{
		{ID: uuid.New(), Name: "Harbor Bridge Retrofit"},
		{ID: uuid.New(), Name: "Terminal Expansion"},
	}

	s.projectRepo.EXPECT().List(0, 50).Return(projects, int64(2), nil)

	result, total, err := s.service.ListProjects(0, 50)

	s.Require().NoError(err)
	s.Equal(projects, result)
	s.Equal(int64(2), total)
}

func (s *ProjectServiceTestSuite) TestListProjects_ClampsPagination() {
	s.projectRepo.EXPECT().List(0, 50).Return([]models.Project{}, int64(0), nil)

	_, _, err := s.service.ListProjects(-10, 0)
	s.NoError(err)

	s.projectRepo.EXPECT().List(0, 50).Return([]models.Project{}, int64(0), nil)

	_, _, err = s.service.ListProjects(0, 500)
	s.NoError(err)
}

func (s *ProjectServiceTestSuite) TestListProjects_RepositoryError() {
	s.projectRepo.EXPECT().List(0, 50).Return(nil, int64(0), errors.New("query failed"))

	result, total, err := s.service.ListProjects(0, 50)

	s.Error(err)
	s.Nil(result)
	s.Zero(total)
}
