package export

import (
	"bytes"
	"fmt"

	"costbook/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// pdf table column widths in millimeters, matching the seven-column
// export layout. Description gets the widest cell.
var pdfColumnWidths = []float64{15, 25, 20, 15, 60, 30, 25}

// ToPDF renders the collection as a tabular PDF: a title line, the
// seven-column table, and a total-cost footer. Any rendering failure is
// reported as an error rather than a partial document.
func ToPDF(fileName string, items []models.LineItem, totalCost decimal.Decimal) ([]byte, error) {
	if fileName == "" || len(items) == 0 {
		return nil, ErrNoContent
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - Proposal", fileName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for i, header := range columnHeaders {
		pdf.CellFormat(pdfColumnWidths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i := range items {
		item := &items[i]
		cells := []string{
			item.DisplayLine(),
			orNA(item.Item),
			displayQuantity(item.Quantity),
			orNA(item.Unit),
			orNA(item.Description),
			orNA(item.Category),
			item.Price.StringFixed(2),
		}
		for j, cell := range cells {
			pdf.CellFormat(pdfColumnWidths[j], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Cost: $%s", totalCost.StringFixed(2)), "", 1, "L", false, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("failed to render PDF: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return buf.Bytes(), nil
}
