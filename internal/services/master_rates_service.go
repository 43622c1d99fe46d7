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
	ErrEmptyMasterFile = errors.New("master rate file contains no entries")
	ErrVersionNotFound = errors.New("master file version not found")
)

// MasterRatesService manages the master reference rate table. Each
// upload replaces the active table wholesale and archives the raw
// workbook as a new version.
type MasterRatesService struct {
	rateRepo    repositories.RateRepositoryInterface
	versionRepo repositories.VersionRepositoryInterface
	auditSvc    AuditServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewMasterRatesService creates a new master rates service
func NewMasterRatesService(
	rateRepo repositories.RateRepositoryInterface,
	versionRepo repositories.VersionRepositoryInterface,
	auditSvc AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MasterRatesServiceInterface {
	return &MasterRatesService{
		rateRepo:    rateRepo,
		versionRepo: versionRepo,
		auditSvc:    auditSvc,
		metrics:     metrics,
		logger:      logger,
	}
}

// UploadMasterRates parses and activates a new master rate table,
// superseding the previous one, and archives the uploaded workbook.
func (s *MasterRatesService) UploadMasterRates(fileName string, content []byte, userID uuid.UUID, ipAddress string) (int, error) {
	start := time.Now()

	entries, err := ingest.ParseMasterRates(bytes.NewReader(content))
	if err != nil {
		s.metrics.IncrementCounter("master_rates_upload", map[string]string{"status": "parse_error"})
		return 0, fmt.Errorf("failed to parse master rates: %w", err)
	}
	if len(entries) == 0 {
		return 0, ErrEmptyMasterFile
	}

	if err := s.rateRepo.ReplaceAll(entries); err != nil {
		return 0, fmt.Errorf("failed to replace master rates: %w", err)
	}

	version := &models.MasterFileVersion{
		Name:        fileName,
		FilePath:    fileName,
		Date:        time.Now(),
		FileContent: content,
	}
	if err := s.versionRepo.Create(version); err != nil {
		// The active table already switched; a failed archive is
		// logged but does not undo the upload.
		s.logger.Error("failed to archive master file version",
			"error", err,
			"file_name", fileName)
	}

	if err := s.auditSvc.LogMasterUpload(userID, fileName, len(entries), ipAddress); err != nil {
		s.logger.Warn("failed to audit master rates upload",
			"error", err,
			"file_name", fileName)
	}

	s.metrics.IncrementCounter("master_rates_upload", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("master_rates_upload", time.Since(start))

	s.logger.Info("master rates uploaded",
		"file_name", fileName,
		"entries", len(entries))

	return len(entries), nil
}

// ListVersions returns the archived master workbooks, newest first.
// File contents are omitted from the listing.
func (s *MasterRatesService) ListVersions() ([]models.MasterFileVersion, error) {
	versions, err := s.versionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list master file versions: %w", err)
	}
	return versions, nil
}

// GetVersionContent returns one archived workbook including its bytes
func (s *MasterRatesService) GetVersionContent(id uuid.UUID) (*models.MasterFileVersion, error) {
	version, err := s.versionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrVersionNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get master file version: %w", err)
	}
	return version, nil
}
