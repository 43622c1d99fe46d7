package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"costbook/internal/dto"
	"costbook/internal/export"
	"costbook/internal/services"
	"costbook/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExportHandler(t *testing.T) {
	suite.Run(t, new(ExportHandlerSuite))
}

type ExportHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	worksheetService *service_mocks.MockWorksheetServiceInterface
	handler          *ExportHandler
	e                *echo.Echo
	userID           uuid.UUID
}

func (s *ExportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.worksheetService = service_mocks.NewMockWorksheetServiceInterface(s.ctrl)
	s.handler = NewExportHandler(s.worksheetService)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *ExportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportHandlerSuite) getContext(path, fileName string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("fileName")
	c.SetParamValues(fileName)
	return rec, c
}

func (s *ExportHandlerSuite) TestDownloadCSV() {
	s.Run("successful download", func() {
		csvData := []byte("LINE,ITEM\n1,A100\nTotal Cost,10.00\n")

		s.worksheetService.EXPECT().
			ExportCSV(s.userID, "bid.csv", s.userID, gomock.Any()).
			Return(csvData, nil).
			Times(1)

		rec, c := s.getContext("/api/files/download/csv/bid.csv", "bid.csv")

		err := s.handler.DownloadCSV(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(csvData, rec.Body.Bytes())
		s.Contains(rec.Header().Get(echo.HeaderContentType), "text/csv")
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "bid.csv")
	})

	s.Run("source extension replaced in attachment name", func() {
		s.worksheetService.EXPECT().
			ExportCSV(s.userID, "bid.xlsx", s.userID, gomock.Any()).
			Return([]byte("data"), nil).
			Times(1)

		rec, c := s.getContext("/api/files/download/csv/bid.xlsx", "bid.xlsx")

		err := s.handler.DownloadCSV(c)
		s.NoError(err)
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "bid.csv")
		s.NotContains(rec.Header().Get(echo.HeaderContentDisposition), "xlsx")
	})

	s.Run("unknown file", func() {
		s.worksheetService.EXPECT().
			ExportCSV(s.userID, "missing.csv", s.userID, gomock.Any()).
			Return(nil, services.ErrFileNotFound).
			Times(1)

		rec, c := s.getContext("/api/files/download/csv/missing.csv", "missing.csv")

		err := s.handler.DownloadCSV(c)
		s.NoError(err)
		s.Equal(http.StatusNotFound, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("FILE_001", errorResp.Error.Code)
	})

	s.Run("empty worksheet refused before rendering", func() {
		s.worksheetService.EXPECT().
			ExportCSV(s.userID, "bid.csv", s.userID, gomock.Any()).
			Return(nil, fmt.Errorf("csv export: %w", export.ErrNoContent)).
			Times(1)

		rec, c := s.getContext("/api/files/download/csv/bid.csv", "bid.csv")

		err := s.handler.DownloadCSV(c)
		s.NoError(err)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("EXPORT_001", errorResp.Error.Code)
	})
}

func (s *ExportHandlerSuite) TestDownloadPDF() {
	s.Run("successful download", func() {
		pdfData := []byte("%PDF-1.3 fake document")

		s.worksheetService.EXPECT().
			ExportPDF(s.userID, "bid.csv", s.userID, gomock.Any()).
			Return(pdfData, nil).
			Times(1)

		rec, c := s.getContext("/api/files/download/pdf/bid.csv", "bid.csv")

		err := s.handler.DownloadPDF(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(pdfData, rec.Body.Bytes())
		s.Contains(rec.Header().Get(echo.HeaderContentType), "application/pdf")
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "bid.pdf")
	})

	s.Run("empty worksheet refused before rendering", func() {
		s.worksheetService.EXPECT().
			ExportPDF(s.userID, "bid.csv", s.userID, gomock.Any()).
			Return(nil, fmt.Errorf("pdf export: %w", export.ErrNoContent)).
			Times(1)

		rec, c := s.getContext("/api/files/download/pdf/bid.csv", "bid.csv")

		err := s.handler.DownloadPDF(c)
		s.NoError(err)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("EXPORT_001", errorResp.Error.Code)
	})

	s.Run("render failure", func() {
		s.worksheetService.EXPECT().
			ExportPDF(s.userID, "bid.csv", s.userID, gomock.Any()).
			Return(nil, services.ErrNoWorksheet).
			Times(1)

		rec, c := s.getContext("/api/files/download/pdf/bid.csv", "bid.csv")

		err := s.handler.DownloadPDF(c)
		s.NoError(err)
		s.Equal(http.StatusInternalServerError, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("EXPORT_002", errorResp.Error.Code)
	})
}

func (s *ExportHandlerSuite) TestChart() {
	s.Run("returns chart dataset", func() {
		chart := &dto.ChartResponse{
			Labels: []string{"Concrete", "Steel"},
			Values: []decimal.Decimal{
				decimal.RequireFromString("30"),
				decimal.RequireFromString("70"),
			},
			Percentages: []decimal.Decimal{
				decimal.RequireFromString("30"),
				decimal.RequireFromString("70"),
			},
			Colors: []string{"#36A2EB", "#FF6384"},
		}

		s.worksheetService.EXPECT().
			Chart(s.userID, "bid.csv").
			Return(chart, nil).
			Times(1)

		rec, c := s.getContext("/api/files/chart/bid.csv", "bid.csv")

		err := s.handler.Chart(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.ChartResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal([]string{"Concrete", "Steel"}, response.Labels)
		s.Len(response.Percentages, 2)
	})

	s.Run("nothing to chart", func() {
		s.worksheetService.EXPECT().
			Chart(s.userID, "bid.csv").
			Return(nil, services.ErrEmptyChart).
			Times(1)

		rec, c := s.getContext("/api/files/chart/bid.csv", "bid.csv")

		err := s.handler.Chart(c)
		s.NoError(err)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("EXPORT_001", errorResp.Error.Code)
	})

	s.Run("unknown file", func() {
		s.worksheetService.EXPECT().
			Chart(s.userID, "missing.csv").
			Return(nil, services.ErrFileNotFound).
			Times(1)

		rec, c := s.getContext("/api/files/chart/missing.csv", "missing.csv")

		err := s.handler.Chart(c)
		s.NoError(err)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
