package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"costbook/internal/costing"
	"costbook/internal/dto"
	"costbook/internal/export"
	"costbook/internal/models"
	"costbook/internal/repositories"
	"costbook/internal/worksheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoWorksheet = errors.New("no worksheet is open for this user")
	ErrRowNotFound = errors.New("worksheet row not found")
	ErrEmptyChart  = errors.New("worksheet has no costed rows to chart")
)

// WorksheetService drives the per-user working copy of an open proposal
// file. Reads and edits operate on the in-memory session; price edits
// are also written through to the stored proposal so a reload sees them.
type WorksheetService struct {
	manager      *worksheet.Manager
	lineItemRepo repositories.LineItemRepositoryInterface
	auditSvc     AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewWorksheetService creates a new worksheet service
func NewWorksheetService(
	manager *worksheet.Manager,
	lineItemRepo repositories.LineItemRepositoryInterface,
	auditSvc AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) WorksheetServiceInterface {
	return &WorksheetService{
		manager:      manager,
		lineItemRepo: lineItemRepo,
		auditSvc:     auditSvc,
		metrics:      metrics,
		logger:       logger,
	}
}

// Open loads the named proposal file into the user's session, replacing
// whatever file was open before. A selection that is superseded by a
// newer Open before its rows arrive is discarded.
func (s *WorksheetService) Open(userID uuid.UUID, fileName string) ([]models.LineItem, error) {
	session := s.manager.ForUser(userID)
	generation := session.Select(fileName)

	items, err := s.lineItemRepo.GetByProposal(fileName)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to load proposal: %w", err)
	}

	if err := session.Complete(generation, items); err != nil {
		// A newer selection won the race; its load will arrive on its
		// own generation.
		return nil, err
	}

	s.metrics.IncrementCounter("worksheet_open", nil)

	return items, nil
}

// Rows returns the session's rows in their current display order
func (s *WorksheetService) Rows(userID uuid.UUID) ([]dto.LineItemResponse, error) {
	session := s.manager.ForUser(userID)
	if session.IsEmpty() && session.FileName() == "" {
		return nil, ErrNoWorksheet
	}
	return rowsToResponses(session.View()), nil
}

// EditPrice applies a new unit price to one worksheet row and writes
// the change through to storage. Unparsable input normalizes to zero.
func (s *WorksheetService) EditPrice(userID uuid.UUID, req *dto.UpdateLineItemRequest, ipAddress string) (*dto.UpdateLineItemResponse, error) {
	session := s.manager.ForUser(userID)

	rowID, err := uuid.Parse(req.RowID)
	if err != nil {
		return nil, fmt.Errorf("invalid row ID: %w", err)
	}

	row, err := session.EditPrice(rowID, req.NewPrice)
	if err != nil {
		if errors.Is(err, worksheet.ErrNoFileSelected) {
			return nil, ErrNoWorksheet
		}
		if errors.Is(err, worksheet.ErrRowNotFound) {
			return nil, ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to edit price: %w", err)
	}

	if err := s.lineItemRepo.UpdatePrice(row.Item.ID, row.Item.Price, row.Item.TotalPrice); err != nil {
		// The session already holds the edit; storage catches up on the
		// next successful write or reload.
		s.logger.Warn("failed to persist price edit",
			"error", err,
			"line_item_id", row.Item.ID)
	}

	if err := s.auditSvc.LogLineItemUpdated(userID, row.Item.ID, row.Item.Price.String(), ipAddress); err != nil {
		s.logger.Warn("failed to audit price edit",
			"error", err,
			"line_item_id", row.Item.ID)
	}

	s.metrics.IncrementCounter("line_item_edit", nil)

	return &dto.UpdateLineItemResponse{
		Row:       rowToResponse(row),
		TotalCost: session.TotalCost(),
	}, nil
}

// SortByCategory reorders the view by category, toggling direction on
// repeated calls
func (s *WorksheetService) SortByCategory(userID uuid.UUID) ([]dto.LineItemResponse, error) {
	session := s.manager.ForUser(userID)
	if session.FileName() == "" {
		return nil, ErrNoWorksheet
	}
	return rowsToResponses(session.SortByCategory()), nil
}

// SortByLine reorders the view by line number, toggling direction on
// repeated calls. Rows without a line number sort last.
func (s *WorksheetService) SortByLine(userID uuid.UUID) ([]dto.LineItemResponse, error) {
	session := s.manager.ForUser(userID)
	if session.FileName() == "" {
		return nil, ErrNoWorksheet
	}
	return rowsToResponses(session.SortByLine()), nil
}

// TotalCost returns the worksheet's running total as a decimal string
func (s *WorksheetService) TotalCost(userID uuid.UUID) (string, error) {
	session := s.manager.ForUser(userID)
	if session.FileName() == "" {
		return "", ErrNoWorksheet
	}
	return session.TotalCost().StringFixed(2), nil
}

// Chart aggregates the open worksheet by category for visualization.
// It operates on the session's current rows, including unsaved edits.
func (s *WorksheetService) Chart(userID uuid.UUID, fileName string) (*dto.ChartResponse, error) {
	items, err := s.sessionItems(userID, fileName)
	if err != nil {
		return nil, err
	}

	totals := costing.CategoryTotals(items)
	dataset := costing.BuildChartDataset(totals)
	if dataset.IsEmpty() {
		return nil, ErrEmptyChart
	}

	return &dto.ChartResponse{
		Labels:      dataset.Labels,
		Values:      dataset.Values,
		Percentages: dataset.Percentages,
		Colors:      dataset.Colors,
	}, nil
}

// ExportCSV renders the open worksheet as a CSV document
func (s *WorksheetService) ExportCSV(userID uuid.UUID, fileName string, requestedBy uuid.UUID, ipAddress string) ([]byte, error) {
	return s.export(userID, fileName, requestedBy, ipAddress, "csv", export.ToCSV)
}

// ExportPDF renders the open worksheet as a PDF document
func (s *WorksheetService) ExportPDF(userID uuid.UUID, fileName string, requestedBy uuid.UUID, ipAddress string) ([]byte, error) {
	return s.export(userID, fileName, requestedBy, ipAddress, "pdf", export.ToPDF)
}

func (s *WorksheetService) export(
	userID uuid.UUID,
	fileName string,
	requestedBy uuid.UUID,
	ipAddress string,
	format string,
	render func(string, []models.LineItem, decimal.Decimal) ([]byte, error),
) ([]byte, error) {
	start := time.Now()

	items, err := s.sessionItems(userID, fileName)
	if err != nil {
		return nil, err
	}

	data, err := render(fileName, items, costing.TotalCost(items))
	if err != nil {
		s.metrics.IncrementCounter("export", map[string]string{"format": format, "status": "error"})
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	if err := s.auditSvc.LogExport(requestedBy, fileName, format, ipAddress); err != nil {
		s.logger.Warn("failed to audit export",
			"error", err,
			"file_name", fileName,
			"format", format)
	}

	s.metrics.IncrementCounter("export", map[string]string{"format": format, "status": "success"})
	s.metrics.RecordProcessingTime("export", time.Since(start))

	return data, nil
}

// sessionItems resolves the rows to operate on: the open session when
// it holds the requested file, otherwise the stored proposal.
func (s *WorksheetService) sessionItems(userID uuid.UUID, fileName string) ([]models.LineItem, error) {
	session := s.manager.ForUser(userID)
	if session.FileName() == fileName {
		return session.Items(), nil
	}

	items, err := s.lineItemRepo.GetByProposal(fileName)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to load proposal: %w", err)
	}
	return items, nil
}

func rowToResponse(row worksheet.Row) dto.LineItemResponse {
	return dto.LineItemResponse{
		RowID:       row.ID.String(),
		Line:        row.Item.DisplayLine(),
		Item:        row.Item.Item,
		Quantity:    row.Item.Quantity,
		Unit:        row.Item.Unit,
		Description: row.Item.Description,
		Category:    row.Item.Category,
		Price:       row.Item.Price,
		TotalPrice:  row.Item.TotalPrice,
	}
}

func rowsToResponses(rows []worksheet.Row) []dto.LineItemResponse {
	responses := make([]dto.LineItemResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, rowToResponse(row))
	}
	return responses
}
