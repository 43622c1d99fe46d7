// Package export serializes the current worksheet state into
// downloadable CSV and PDF documents. Both serializers refuse to emit a
// file with zero data rows.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"costbook/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoContent means the export was attempted with no selected file
	// or an empty collection; it is raised before any bytes are written.
	ErrNoContent = errors.New("no file selected or no content to export")
)

// columnHeaders is the shared seven-column layout of both export formats.
var columnHeaders = []string{"Line", "Item", "Quantity", "Unit", "Description", "Category", "Price"}

// ToCSV renders the collection as CSV: a header, one row per line item
// in iteration order, then a trailing total row. Money renders with two
// decimals; absent values render as "N/A".
func ToCSV(fileName string, items []models.LineItem, totalCost decimal.Decimal) ([]byte, error) {
	if fileName == "" || len(items) == 0 {
		return nil, ErrNoContent
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columnHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range items {
		item := &items[i]
		record := []string{
			item.DisplayLine(),
			orNA(item.Item),
			displayQuantity(item.Quantity),
			orNA(item.Unit),
			orNA(item.Description),
			orNA(item.Category),
			item.Price.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	totalRow := []string{"", "", "", "", "", "Total Cost", totalCost.StringFixed(2)}
	if err := w.Write(totalRow); err != nil {
		return nil, fmt.Errorf("failed to write CSV total row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func orNA(value string) string {
	if value == "" {
		return models.LineDisplayNA
	}
	return value
}

// displayQuantity mirrors the table rendering: a zero quantity shows as
// "N/A", anything else as its plain decimal form.
func displayQuantity(quantity decimal.Decimal) string {
	if quantity.IsZero() {
		return models.LineDisplayNA
	}
	return quantity.String()
}
