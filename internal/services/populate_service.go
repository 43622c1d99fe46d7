package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"costbook/internal/models"
	"costbook/internal/repositories"

	"github.com/google/uuid"
)

var ErrNoMasterRates = errors.New("no master rate table has been uploaded")

// PopulateService reconciles a stored proposal against the current
// master rate table. Matched rows take the master rate and category;
// unmatched rows fall back to a zero rate and no category. Every row
// has its total recomputed, and the reconciled rows replace the stored
// proposal, so pre-populate prices and manual edits are not
// recoverable afterwards.
type PopulateService struct {
	lineItemRepo repositories.LineItemRepositoryInterface
	rateRepo     repositories.RateRepositoryInterface
	auditSvc     AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewPopulateService creates a new populate service
func NewPopulateService(
	lineItemRepo repositories.LineItemRepositoryInterface,
	rateRepo repositories.RateRepositoryInterface,
	auditSvc AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PopulateServiceInterface {
	return &PopulateService{
		lineItemRepo: lineItemRepo,
		rateRepo:     rateRepo,
		auditSvc:     auditSvc,
		metrics:      metrics,
		logger:       logger,
	}
}

// Populate applies master rates to every line item of the named
// proposal file and persists the result. It returns the reconciled
// rows plus the matched and unmatched counts.
func (s *PopulateService) Populate(fileName string, userID uuid.UUID, ipAddress string) ([]models.LineItem, int, int, error) {
	start := time.Now()

	items, err := s.lineItemRepo.GetByProposal(fileName)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, 0, 0, ErrFileNotFound
		}
		return nil, 0, 0, fmt.Errorf("failed to get proposal: %w", err)
	}

	rates, err := s.rateRepo.GetAll()
	if err != nil {
		if errors.Is(err, repositories.ErrNoMasterRates) {
			return nil, 0, 0, ErrNoMasterRates
		}
		return nil, 0, 0, fmt.Errorf("failed to load master rates: %w", err)
	}

	lookup := models.BuildRateLookup(rates)

	matched, unmatched := 0, 0
	for i := range items {
		// Unknown codes resolve to a zero rate and no category, so an
		// earlier manual edit never survives a populate run.
		rate, category, ok := lookup.Resolve(items[i].Item)
		items[i].Price = rate
		items[i].Category = category
		items[i].RecalculateTotal()
		if ok {
			matched++
		} else {
			unmatched++
		}
	}

	if err := s.lineItemRepo.ReplaceProposal(fileName, items); err != nil {
		s.metrics.IncrementCounter("populate_run", map[string]string{"status": "error"})
		return nil, 0, 0, fmt.Errorf("failed to persist reconciled proposal: %w", err)
	}

	if err := s.auditSvc.LogPopulate(userID, fileName, matched, unmatched, ipAddress); err != nil {
		s.logger.Warn("failed to audit populate run",
			"error", err,
			"file_name", fileName)
	}

	s.metrics.IncrementCounter("populate_run", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("populate_run", time.Since(start))

	s.logger.Info("proposal populated",
		"file_name", fileName,
		"matched", matched,
		"unmatched", unmatched)

	return items, matched, unmatched, nil
}
