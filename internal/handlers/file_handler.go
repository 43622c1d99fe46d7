package handlers

import (
	"errors"
	"io"
	"net/http"

	"costbook/internal/dto"
	apierrors "costbook/internal/errors"
	"costbook/internal/ingest"
	"costbook/internal/services"
	"costbook/internal/worksheet"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MaxUploadBytes caps the size of uploaded spreadsheets.
const MaxUploadBytes = 20 << 20 // 20 MiB

// FileHandler handles proposal file and master rate table endpoints
type FileHandler struct {
	proposalService    services.ProposalServiceInterface
	populateService    services.PopulateServiceInterface
	masterRatesService services.MasterRatesServiceInterface
	worksheetService   services.WorksheetServiceInterface
}

// NewFileHandler creates a new file handler
func NewFileHandler(
	proposalService services.ProposalServiceInterface,
	populateService services.PopulateServiceInterface,
	masterRatesService services.MasterRatesServiceInterface,
	worksheetService services.WorksheetServiceInterface,
) *FileHandler {
	return &FileHandler{
		proposalService:    proposalService,
		populateService:    populateService,
		masterRatesService: masterRatesService,
		worksheetService:   worksheetService,
	}
}

// UploadProposal stores a proposal spreadsheet under a project
// @Summary Upload a proposal file
// @Description Parse a CSV or XLSX proposal and store its line items. Re-uploading a file name replaces the stored rows.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param file formData file true "Proposal spreadsheet (.csv or .xlsx)"
// @Success 201 {object} dto.UploadResponse "Upload stored"
// @Failure 400 {object} errors.ErrorResponse "Unsupported type - FILE_002"
// @Failure 404 {object} errors.ErrorResponse "Project not found - PROJECT_001"
// @Failure 413 {object} errors.ErrorResponse "File too large - FILE_003"
// @Failure 422 {object} errors.ErrorResponse "Parse failed - FILE_004"
// @Router /api/projects/{projectId}/upload-proposal [post]
func (h *FileHandler) UploadProposal(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	fileName, content, err := readUpload(c)
	if err != nil {
		return sendUploadError(c, err)
	}

	rows, err := h.proposalService.UploadProposal(projectID, fileName, content, userID, getClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return SendError(c, apierrors.ProjectNotFound)
		case errors.Is(err, ingest.ErrUnsupportedType):
			return SendError(c, apierrors.FileUnsupportedType)
		case errors.Is(err, ingest.ErrEmptySheet), errors.Is(err, services.ErrEmptyProposal):
			return SendError(c, apierrors.FileParseFailed, apierrors.WithDetails("File contains no line items"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{
		FileName: fileName,
		Rows:     rows,
	})
}

// ListFiles lists the proposal files stored for a project
// @Summary List project files
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.FileListResponse "File names"
// @Failure 404 {object} errors.ErrorResponse "Project not found - PROJECT_001"
// @Router /api/projects/{projectId}/files [get]
func (h *FileHandler) ListFiles(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	files, err := h.proposalService.ListFiles(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return SendError(c, apierrors.ProjectNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FileListResponse{Files: files})
}

// GetFileContents opens a proposal file into the caller's worksheet
// @Summary Get file contents
// @Description Load the named proposal into the caller's worksheet and return its rows with the running total
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param fileName path string true "Proposal file name"
// @Success 200 {object} dto.FileContentsResponse "Worksheet rows"
// @Failure 404 {object} errors.ErrorResponse "File not found - FILE_001"
// @Router /api/files/contents/{fileName} [get]
func (h *FileHandler) GetFileContents(c echo.Context) error {
	fileName := c.Param("fileName")
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if _, err := h.worksheetService.Open(userID, fileName); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return SendError(c, apierrors.FileNotFound)
		}
		if errors.Is(err, worksheet.ErrStaleLoad) {
			// A newer selection superseded this one mid-load
			return c.NoContent(http.StatusNoContent)
		}
		return SendSystemError(c, err)
	}

	return h.respondWithWorksheet(c, userID, fileName)
}

// Populate reconciles a proposal against the master rate table
// @Summary Populate a proposal
// @Description Overwrite matched line item prices and categories from the master rate table, recompute totals and persist
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param fileName path string true "Proposal file name"
// @Success 200 {object} dto.PopulateResponse "Reconciled worksheet"
// @Failure 404 {object} errors.ErrorResponse "File or master rates missing - POPULATE_001, POPULATE_002"
// @Router /api/files/populate/{fileName} [post]
func (h *FileHandler) Populate(c echo.Context) error {
	fileName := c.Param("fileName")
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	_, matched, unmatched, err := h.populateService.Populate(fileName, userID, getClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			return SendError(c, apierrors.PopulateFileNotFound)
		case errors.Is(err, services.ErrNoMasterRates):
			return SendError(c, apierrors.PopulateNoMasterRates)
		default:
			return SendSystemError(c, err)
		}
	}

	// Reload the worksheet so the session reflects the persisted result
	if _, err := h.worksheetService.Open(userID, fileName); err != nil {
		return SendSystemError(c, err)
	}

	rows, err := h.worksheetService.Rows(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalCost, err := h.worksheetService.TotalCost(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	total, err := decimal.NewFromString(totalCost)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PopulateResponse{
		FileName:  fileName,
		Items:     rows,
		TotalCost: total,
		Matched:   matched,
		Unmatched: unmatched,
	})
}

// UpdateLineItem edits the unit price of one worksheet row
// @Summary Update a line item price
// @Description Apply a new unit price to the addressed row. Unparsable input normalizes to zero.
// @Tags Files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateLineItemRequest true "Edit details"
// @Success 200 {object} dto.UpdateLineItemResponse "Edited row and new total"
// @Failure 404 {object} errors.ErrorResponse "Row not found - FILE_005"
// @Router /api/files/update-line-item [put]
func (h *FileHandler) UpdateLineItem(c echo.Context) error {
	var req dto.UpdateLineItemRequest

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

	resp, err := h.worksheetService.EditPrice(userID, &req, getClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoWorksheet):
			return SendError(c, apierrors.FileNotFound, apierrors.WithDetails("No worksheet is open"))
		case errors.Is(err, services.ErrRowNotFound):
			return SendError(c, apierrors.FileLineNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// SortByCategory reorders the caller's worksheet by category
// @Summary Sort worksheet by category
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FileContentsResponse "Reordered rows"
// @Router /api/files/sort/category [post]
func (h *FileHandler) SortByCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	rows, err := h.worksheetService.SortByCategory(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoWorksheet) {
			return SendError(c, apierrors.FileNotFound, apierrors.WithDetails("No worksheet is open"))
		}
		return SendSystemError(c, err)
	}

	return h.respondWithSortedRows(c, userID, rows)
}

// SortByLine reorders the caller's worksheet by line number
// @Summary Sort worksheet by line number
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FileContentsResponse "Reordered rows"
// @Router /api/files/sort/line [post]
func (h *FileHandler) SortByLine(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	rows, err := h.worksheetService.SortByLine(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoWorksheet) {
			return SendError(c, apierrors.FileNotFound, apierrors.WithDetails("No worksheet is open"))
		}
		return SendSystemError(c, err)
	}

	return h.respondWithSortedRows(c, userID, rows)
}

// UploadMasterRates replaces the active master rate table
// @Summary Upload the master rate table
// @Description Parse an XLSX rate workbook, supersede the active table and archive the upload as a new version
// @Tags MasterRates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Master rate workbook (.xlsx)"
// @Success 201 {object} dto.UploadResponse "Rates activated"
// @Failure 400 {object} errors.ErrorResponse "Missing columns - VALIDATION_004"
// @Failure 422 {object} errors.ErrorResponse "Parse failed - FILE_004"
// @Router /api/upload-master-rates [post]
func (h *FileHandler) UploadMasterRates(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	fileName, content, err := readUpload(c)
	if err != nil {
		return sendUploadError(c, err)
	}

	entries, err := h.masterRatesService.UploadMasterRates(fileName, content, userID, getClientIP(c))
	if err != nil {
		var missing *ingest.MissingColumnsError
		switch {
		case errors.As(err, &missing):
			return SendError(c, apierrors.ValidationMissingColumn, apierrors.WithDetails(missing.Columns...))
		case errors.Is(err, ingest.ErrEmptySheet), errors.Is(err, services.ErrEmptyMasterFile):
			return SendError(c, apierrors.FileParseFailed, apierrors.WithDetails("File contains no rate entries"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{
		FileName: fileName,
		Rows:     entries,
	})
}

// ListVersions lists archived master rate workbooks
// @Summary List master file versions
// @Tags MasterRates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.VersionListResponse "Versions, newest first"
// @Router /api/versions [get]
func (h *FileHandler) ListVersions(c echo.Context) error {
	versions, err := h.masterRatesService.ListVersions()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.VersionResponse, 0, len(versions))
	for i := range versions {
		responses = append(responses, dto.VersionResponse{
			ID:   versions[i].ID.String(),
			Name: versions[i].Name,
			Date: versions[i].Date,
		})
	}

	return c.JSON(http.StatusOK, dto.VersionListResponse{Versions: responses})
}

// GetVersionContent downloads one archived master rate workbook
// @Summary Download a master file version
// @Tags MasterRates
// @Produce application/octet-stream
// @Security BearerAuth
// @Param versionId path string true "Version ID"
// @Success 200 {file} binary "Workbook bytes"
// @Failure 404 {object} errors.ErrorResponse "Version not found - VERSION_001"
// @Router /api/version-content/{versionId} [get]
func (h *FileHandler) GetVersionContent(c echo.Context) error {
	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		return SendError(c, apierrors.VersionNotFound)
	}

	version, err := h.masterRatesService.GetVersionContent(versionID)
	if err != nil {
		if errors.Is(err, services.ErrVersionNotFound) {
			return SendError(c, apierrors.VersionNotFound)
		}
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+version.Name+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", version.FileContent)
}

func (h *FileHandler) respondWithSortedRows(c echo.Context, userID uuid.UUID, rows []dto.LineItemResponse) error {
	totalCost, err := h.worksheetService.TotalCost(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	total, err := decimal.NewFromString(totalCost)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FileContentsResponse{
		Items:     rows,
		TotalCost: total,
	})
}

func (h *FileHandler) respondWithWorksheet(c echo.Context, userID uuid.UUID, fileName string) error {
	rows, err := h.worksheetService.Rows(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalCost, err := h.worksheetService.TotalCost(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	total, err := decimal.NewFromString(totalCost)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FileContentsResponse{
		FileName:  fileName,
		Items:     rows,
		TotalCost: total,
	})
}

var (
	errMissingUpload  = errors.New("missing file upload")
	errUploadTooLarge = errors.New("uploaded file exceeds size cap")
)

// readUpload extracts the "file" part of a multipart upload, enforcing
// the size cap.
func readUpload(c echo.Context) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, errMissingUpload
	}

	if fileHeader.Size > MaxUploadBytes {
		return "", nil, errUploadTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, MaxUploadBytes+1))
	if err != nil {
		return "", nil, err
	}
	if len(content) > MaxUploadBytes {
		return "", nil, errUploadTooLarge
	}

	return fileHeader.Filename, content, nil
}

// sendUploadError maps upload extraction failures to API error codes.
func sendUploadError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errMissingUpload):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Missing file upload"))
	case errors.Is(err, errUploadTooLarge):
		return SendError(c, apierrors.FileTooLarge)
	default:
		return SendSystemError(c, err)
	}
}
