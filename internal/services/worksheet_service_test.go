package services

import (
	"log/slog"
	"testing"

	"costbook/internal/dto"
	"costbook/internal/models"
	"costbook/internal/repositories"
	"costbook/internal/repositories/repository_mocks"
	"costbook/internal/services/service_mocks"
	"costbook/internal/worksheet"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WorksheetServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	lineItemRepo *repository_mocks.MockLineItemRepositoryInterface
	auditSvc     *service_mocks.MockAuditServiceInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	manager      *worksheet.Manager
	service      WorksheetServiceInterface
	userID       uuid.UUID
}

func (s *WorksheetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lineItemRepo = repository_mocks.NewMockLineItemRepositoryInterface(s.ctrl)
	s.auditSvc = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.manager = worksheet.NewManager()
	s.service = NewWorksheetService(s.manager, s.lineItemRepo, s.auditSvc, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *WorksheetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWorksheetServiceSuite(t *testing.T) {
	suite.Run(t, new(WorksheetServiceTestSuite))
}

func (s *WorksheetServiceTestSuite) open(fileName string, items []models.LineItem) {
	s.lineItemRepo.EXPECT().GetByProposal(fileName).Return(items, nil)
	s.metrics.EXPECT().IncrementCounter("worksheet_open", nil)
	_, err := s.service.Open(s.userID, fileName)
	s.Require().NoError(err)
}

func worksheetItem(item, category string, quantity, price int64) models.LineItem {
	li := models.LineItem{
		ID:       uuid.New(),
		Item:     item,
		Category: category,
		Quantity: decimal.NewFromInt(quantity),
		Price:    decimal.NewFromInt(price),
		Proposal: "bid.xlsx",
	}
	li.RecalculateTotal()
	return li
}

func (s *WorksheetServiceTestSuite) TestOpen_UnknownFile() {
	s.lineItemRepo.EXPECT().GetByProposal("missing.xlsx").Return(nil, repositories.ErrProposalNotFound)

	items, err := s.service.Open(s.userID, "missing.xlsx")
	s.ErrorIs(err, ErrFileNotFound)
	s.Nil(items)
}

func (s *WorksheetServiceTestSuite) TestRows_NoWorksheet() {
	rows, err := s.service.Rows(s.userID)
	s.ErrorIs(err, ErrNoWorksheet)
	s.Nil(rows)
}

func (s *WorksheetServiceTestSuite) TestRows_AfterOpen() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
		worksheetItem("CD-200", "Steel", 3, 10),
	})

	rows, err := s.service.Rows(s.userID)
	s.NoError(err)
	s.Len(rows, 2)
	s.Equal("AB-100", rows[0].Item)
	s.NotEmpty(rows[0].RowID)
}

func (s *WorksheetServiceTestSuite) TestEditPrice_RecomputesRowAndTotal() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
		worksheetItem("CD-200", "Steel", 3, 10),
	})

	rows, err := s.service.Rows(s.userID)
	s.Require().NoError(err)

	s.lineItemRepo.EXPECT().UpdatePrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.auditSvc.EXPECT().LogLineItemUpdated(s.userID, gomock.Any(), "100", "192.168.1.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("line_item_edit", nil)

	resp, err := s.service.EditPrice(s.userID, &dto.UpdateLineItemRequest{
		FileName: "bid.xlsx",
		RowID:    rows[0].RowID,
		NewPrice: "100",
	}, "192.168.1.1")
	s.NoError(err)
	s.True(resp.Row.Price.Equal(decimal.NewFromInt(100)))
	s.True(resp.Row.TotalPrice.Equal(decimal.NewFromInt(200)))
	// 200 from the edited row plus 30 from the untouched one
	s.True(resp.TotalCost.Equal(decimal.NewFromInt(230)))
}

func (s *WorksheetServiceTestSuite) TestEditPrice_UnparsableBecomesZero() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
	})

	rows, err := s.service.Rows(s.userID)
	s.Require().NoError(err)

	s.lineItemRepo.EXPECT().UpdatePrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.auditSvc.EXPECT().LogLineItemUpdated(s.userID, gomock.Any(), "0", "192.168.1.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("line_item_edit", nil)

	resp, err := s.service.EditPrice(s.userID, &dto.UpdateLineItemRequest{
		FileName: "bid.xlsx",
		RowID:    rows[0].RowID,
		NewPrice: "not a number",
	}, "192.168.1.1")
	s.NoError(err)
	s.True(resp.Row.Price.IsZero())
	s.True(resp.Row.TotalPrice.IsZero())
}

func (s *WorksheetServiceTestSuite) TestEditPrice_UnknownRow() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
	})

	resp, err := s.service.EditPrice(s.userID, &dto.UpdateLineItemRequest{
		FileName: "bid.xlsx",
		RowID:    uuid.NewString(),
		NewPrice: "100",
	}, "192.168.1.1")
	s.ErrorIs(err, ErrRowNotFound)
	s.Nil(resp)
}

func (s *WorksheetServiceTestSuite) TestEditPrice_NoWorksheet() {
	resp, err := s.service.EditPrice(s.userID, &dto.UpdateLineItemRequest{
		FileName: "bid.xlsx",
		RowID:    uuid.NewString(),
		NewPrice: "100",
	}, "192.168.1.1")
	s.ErrorIs(err, ErrNoWorksheet)
	s.Nil(resp)
}

func (s *WorksheetServiceTestSuite) TestSortByCategory_TogglesDirection() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Steel", 2, 5),
		worksheetItem("CD-200", "Concrete", 3, 10),
	})

	ascending, err := s.service.SortByCategory(s.userID)
	s.NoError(err)
	s.Equal("Concrete", ascending[0].Category)

	descending, err := s.service.SortByCategory(s.userID)
	s.NoError(err)
	s.Equal("Steel", descending[0].Category)
}

func (s *WorksheetServiceTestSuite) TestSortByLine_RowsWithoutLineSortLast() {
	one, three := 1, 3
	withLine := func(line *int) models.LineItem {
		li := worksheetItem("AB-100", "Concrete", 2, 5)
		li.Line = line
		return li
	}
	s.open("bid.xlsx", []models.LineItem{
		withLine(&three),
		withLine(nil),
		withLine(&one),
	})

	rows, err := s.service.SortByLine(s.userID)
	s.NoError(err)
	s.Equal("1", rows[0].Line)
	s.Equal("3", rows[1].Line)
	s.Equal(models.LineDisplayNA, rows[2].Line)
}

func (s *WorksheetServiceTestSuite) TestTotalCost() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
		worksheetItem("CD-200", "Steel", 3, 10),
	})

	total, err := s.service.TotalCost(s.userID)
	s.NoError(err)
	s.Equal("40.00", total)
}

func (s *WorksheetServiceTestSuite) TestChart_PartitionsByCategory() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
		worksheetItem("CD-200", "Steel", 3, 10),
		worksheetItem("EF-300", "", 1, 10),
	})

	chart, err := s.service.Chart(s.userID, "bid.xlsx")
	s.NoError(err)
	s.Equal([]string{"Concrete", "Steel", models.CategoryUncategorized}, chart.Labels)
	s.Len(chart.Values, 3)
	s.Len(chart.Percentages, 3)
	s.Len(chart.Colors, 3)

	// Percentages partition 100 across the categories
	sum := decimal.Zero
	for _, p := range chart.Percentages {
		sum = sum.Add(p)
	}
	s.True(sum.Equal(decimal.NewFromInt(100)), "got %s", sum)
}

func (s *WorksheetServiceTestSuite) TestChart_FallsBackToStorage() {
	items := []models.LineItem{worksheetItem("AB-100", "Concrete", 2, 5)}
	s.lineItemRepo.EXPECT().GetByProposal("other.xlsx").Return(items, nil)

	chart, err := s.service.Chart(s.userID, "other.xlsx")
	s.NoError(err)
	s.Equal([]string{"Concrete"}, chart.Labels)
}

func (s *WorksheetServiceTestSuite) TestExportCSV_ReflectsSessionEdits() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
	})

	rows, err := s.service.Rows(s.userID)
	s.Require().NoError(err)

	s.lineItemRepo.EXPECT().UpdatePrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.auditSvc.EXPECT().LogLineItemUpdated(s.userID, gomock.Any(), "100", "192.168.1.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("line_item_edit", nil)
	_, err = s.service.EditPrice(s.userID, &dto.UpdateLineItemRequest{
		FileName: "bid.xlsx",
		RowID:    rows[0].RowID,
		NewPrice: "100",
	}, "192.168.1.1")
	s.Require().NoError(err)

	s.auditSvc.EXPECT().LogExport(s.userID, "bid.xlsx", "csv", "192.168.1.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("export", map[string]string{"format": "csv", "status": "success"})
	s.metrics.EXPECT().RecordProcessingTime("export", gomock.Any())

	data, err := s.service.ExportCSV(s.userID, "bid.xlsx", s.userID, "192.168.1.1")
	s.NoError(err)
	s.Contains(string(data), "100")
	s.Contains(string(data), "Total Cost")
}

func (s *WorksheetServiceTestSuite) TestExportPDF() {
	s.open("bid.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
	})

	s.auditSvc.EXPECT().LogExport(s.userID, "bid.xlsx", "pdf", "192.168.1.1").Return(nil)
	s.metrics.EXPECT().IncrementCounter("export", map[string]string{"format": "pdf", "status": "success"})
	s.metrics.EXPECT().RecordProcessingTime("export", gomock.Any())

	data, err := s.service.ExportPDF(s.userID, "bid.xlsx", s.userID, "192.168.1.1")
	s.NoError(err)
	s.NotEmpty(data)
	s.Equal("%PDF", string(data[:4]))
}

func (s *WorksheetServiceTestSuite) TestOpen_ReplacesPreviousFile() {
	s.open("first.xlsx", []models.LineItem{
		worksheetItem("AB-100", "Concrete", 2, 5),
	})
	s.open("second.xlsx", []models.LineItem{
		worksheetItem("CD-200", "Steel", 3, 10),
	})

	rows, err := s.service.Rows(s.userID)
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("CD-200", rows[0].Item)

	total, err := s.service.TotalCost(s.userID)
	s.NoError(err)
	s.Equal("30.00", total)
}
