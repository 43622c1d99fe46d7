package handlers

import (
	"errors"
	"net/http"

	apierrors "costbook/internal/errors"
	"costbook/internal/export"
	"costbook/internal/services"

	"github.com/labstack/echo/v4"
)

// ExportHandler handles worksheet export and visualization endpoints
type ExportHandler struct {
	worksheetService services.WorksheetServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(worksheetService services.WorksheetServiceInterface) *ExportHandler {
	return &ExportHandler{
		worksheetService: worksheetService,
	}
}

// DownloadCSV renders a proposal worksheet as CSV
// @Summary Download worksheet as CSV
// @Description Render the named proposal, including any unsaved session edits, as a CSV document with a trailing total row
// @Tags Exports
// @Produce text/csv
// @Security BearerAuth
// @Param fileName path string true "Proposal file name"
// @Success 200 {file} binary "CSV document"
// @Failure 404 {object} errors.ErrorResponse "File not found - FILE_001"
// @Router /api/files/download/csv/{fileName} [get]
func (h *ExportHandler) DownloadCSV(c echo.Context) error {
	fileName := c.Param("fileName")
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	data, err := h.worksheetService.ExportCSV(userID, fileName, userID, getClientIP(c))
	if err != nil {
		return h.sendExportError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachmentName(fileName, ".csv"))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// DownloadPDF renders a proposal worksheet as PDF
// @Summary Download worksheet as PDF
// @Description Render the named proposal, including any unsaved session edits, as a PDF document
// @Tags Exports
// @Produce application/pdf
// @Security BearerAuth
// @Param fileName path string true "Proposal file name"
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} errors.ErrorResponse "File not found - FILE_001"
// @Router /api/files/download/pdf/{fileName} [get]
func (h *ExportHandler) DownloadPDF(c echo.Context) error {
	fileName := c.Param("fileName")
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	data, err := h.worksheetService.ExportPDF(userID, fileName, userID, getClientIP(c))
	if err != nil {
		return h.sendExportError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachmentName(fileName, ".pdf"))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// Chart aggregates a proposal by category for visualization
// @Summary Category chart data
// @Description Partition the worksheet's total cost by category and return parallel label, value, percentage and color vectors
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Param fileName path string true "Proposal file name"
// @Success 200 {object} dto.ChartResponse "Chart dataset"
// @Failure 404 {object} errors.ErrorResponse "File not found - FILE_001"
// @Failure 422 {object} errors.ErrorResponse "Nothing to chart - EXPORT_001"
// @Router /api/files/chart/{fileName} [get]
func (h *ExportHandler) Chart(c echo.Context) error {
	fileName := c.Param("fileName")
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	chart, err := h.worksheetService.Chart(userID, fileName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			return SendError(c, apierrors.FileNotFound)
		case errors.Is(err, services.ErrEmptyChart):
			return SendError(c, apierrors.ExportNoContent)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, chart)
}

func (h *ExportHandler) sendExportError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrFileNotFound):
		return SendError(c, apierrors.FileNotFound)
	case errors.Is(err, export.ErrNoContent):
		return SendError(c, apierrors.ExportNoContent)
	default:
		return SendError(c, apierrors.ExportFailed)
	}
}

// attachmentName builds a Content-Disposition value, swapping the
// source extension for the export format's.
func attachmentName(fileName, ext string) string {
	base := fileName
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			base = base[:i]
			break
		}
	}
	return `attachment; filename="` + base + ext + `"`
}
