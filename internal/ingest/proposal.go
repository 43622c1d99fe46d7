// Package ingest parses uploaded spreadsheets into model rows: vendor
// proposals (CSV or XLSX) and the master reference rate workbook (XLSX).
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"costbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptySheet      = errors.New("spreadsheet contains no data rows")
)

// proposal spreadsheet headers as they appear in vendor files. Matching
// is case-insensitive with surrounding whitespace ignored.
const (
	headerLine        = "line"
	headerItem        = "item"
	headerQuantity    = "quantity"
	headerUnit        = "unit"
	headerDescription = "description"
	headerPrice       = "price"
	headerCallOrder   = "call order"
	headerAgencyID    = "agency id"
)

// ParseProposal reads a proposal spreadsheet and returns its line items
// in file order. The format is chosen by extension: ".csv" or ".xlsx".
func ParseProposal(fileName string, r io.Reader) ([]models.LineItem, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(fileName), ".csv"):
		return parseProposalCSV(r)
	case strings.HasSuffix(strings.ToLower(fileName), ".xlsx"):
		return parseProposalXLSX(r)
	default:
		return nil, ErrUnsupportedType
	}
}

func parseProposalCSV(r io.Reader) ([]models.LineItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // vendor files often have ragged rows
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return rowsToLineItems(rows)
}

func parseProposalXLSX(r io.Reader) ([]models.LineItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return rowsToLineItems(rows)
}

func rowsToLineItems(rows [][]string) ([]models.LineItem, error) {
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	columns := indexHeaders(rows[0])
	items := make([]models.LineItem, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		item := models.LineItem{
			Line:        cellInt(row, columns[headerLine]),
			Item:        cellString(row, columns[headerItem]),
			Quantity:    cellDecimal(row, columns[headerQuantity]),
			Unit:        cellString(row, columns[headerUnit]),
			Description: cellString(row, columns[headerDescription]),
			Price:       cellDecimal(row, columns[headerPrice]),
			CallOrder:   cellInt(row, columns[headerCallOrder]),
			AgencyID:    cellString(row, columns[headerAgencyID]),
		}
		item.RecalculateTotal()

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrEmptySheet
	}

	return items, nil
}

// indexHeaders maps normalized header names to their column positions.
// Unknown headers are ignored; missing ones resolve to -1 and yield
// zero-valued cells, matching how the spreadsheets are actually filled.
func indexHeaders(header []string) map[string]int {
	columns := map[string]int{
		headerLine:        -1,
		headerItem:        -1,
		headerQuantity:    -1,
		headerUnit:        -1,
		headerDescription: -1,
		headerPrice:       -1,
		headerCallOrder:   -1,
		headerAgencyID:    -1,
	}

	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, known := columns[normalized]; known {
			columns[normalized] = i
		}
	}

	return columns
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellString(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func cellInt(row []string, index int) *int {
	raw := cellString(row, index)
	if raw == "" {
		return nil
	}

	// Spreadsheet tools frequently store integers as "12.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		n := int(f)
		return &n
	}

	return nil
}

func cellDecimal(row []string, index int) decimal.Decimal {
	raw := cellString(row, index)
	if raw == "" {
		return decimal.Zero
	}

	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimPrefix(raw, "$")

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}
