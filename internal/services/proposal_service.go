package services

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"costbook/internal/ingest"
	"costbook/internal/models"
	"costbook/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmptyProposal = errors.New("proposal file contains no line items")
	ErrFileNotFound  = errors.New("proposal file not found")
)

// ProposalService handles proposal spreadsheet upload and retrieval
type ProposalService struct {
	lineItemRepo repositories.LineItemRepositoryInterface
	projectRepo  repositories.ProjectRepositoryInterface
	auditSvc     AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewProposalService creates a new proposal service
func NewProposalService(
	lineItemRepo repositories.LineItemRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	auditSvc AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ProposalServiceInterface {
	return &ProposalService{
		lineItemRepo: lineItemRepo,
		projectRepo:  projectRepo,
		auditSvc:     auditSvc,
		metrics:      metrics,
		logger:       logger,
	}
}

// UploadProposal parses an uploaded spreadsheet and stores its line
// items under the given project. Re-uploading a file name replaces the
// stored rows for that file.
func (s *ProposalService) UploadProposal(projectID uuid.UUID, fileName string, content []byte, userID uuid.UUID, ipAddress string) (int, error) {
	start := time.Now()

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, fmt.Errorf("failed to get project: %w", err)
	}

	items, err := ingest.ParseProposal(fileName, bytes.NewReader(content))
	if err != nil {
		s.metrics.IncrementCounter("proposal_upload", map[string]string{"status": "parse_error"})
		return 0, fmt.Errorf("failed to parse proposal: %w", err)
	}
	if len(items) == 0 {
		return 0, ErrEmptyProposal
	}

	for i := range items {
		items[i].Proposal = fileName
		items[i].ProjectID = projectID
	}

	exists, err := s.lineItemRepo.ProposalExists(fileName)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing proposal: %w", err)
	}

	if exists {
		if err := s.lineItemRepo.ReplaceProposal(fileName, items); err != nil {
			return 0, fmt.Errorf("failed to replace proposal: %w", err)
		}
	} else {
		if err := s.lineItemRepo.CreateBatch(items); err != nil {
			return 0, fmt.Errorf("failed to store proposal: %w", err)
		}
	}

	if err := s.auditSvc.LogProposalUpload(userID, fileName, len(items), ipAddress); err != nil {
		s.logger.Warn("failed to audit proposal upload",
			"error", err,
			"file_name", fileName)
	}

	s.metrics.IncrementCounter("proposal_upload", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("proposal_upload", time.Since(start))

	s.logger.Info("proposal uploaded",
		"file_name", fileName,
		"project_id", projectID,
		"rows", len(items))

	return len(items), nil
}

// ListFiles returns the distinct proposal file names stored for a project
func (s *ProposalService) ListFiles(projectID uuid.UUID) ([]string, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	files, err := s.lineItemRepo.ListProposals(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposal files: %w", err)
	}
	return files, nil
}

// GetContents returns the stored line items for a proposal file
func (s *ProposalService) GetContents(fileName string) ([]models.LineItem, error) {
	items, err := s.lineItemRepo.GetByProposal(fileName)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to get proposal contents: %w", err)
	}
	return items, nil
}
