package ingest

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"costbook/internal/models"

	"github.com/xuri/excelize/v2"
)

// master rate workbook headers. All five are required.
const (
	rateHeaderItemCode    = "itemcode"
	rateHeaderDescription = "item description"
	rateHeaderUnit        = "um"
	rateHeaderRate        = "rate"
	rateHeaderCategory    = "category"
)

// MissingColumnsError reports required headers absent from a master
// rate workbook.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("master rate file is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ParseMasterRates reads a master reference rate workbook. The first
// sheet must carry the headers ITEMCODE, ITEM DESCRIPTION, UM, Rate
// and Category; rows without an item code are skipped.
func ParseMasterRates(r io.Reader) ([]models.RateEntry, error) {
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
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	columns, err := indexRateHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make([]models.RateEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		itemCode := cellString(row, columns[rateHeaderItemCode])
		if itemCode == "" {
			continue
		}

		entries = append(entries, models.RateEntry{
			ItemCode:        itemCode,
			ItemDescription: cellString(row, columns[rateHeaderDescription]),
			Unit:            cellString(row, columns[rateHeaderUnit]),
			Rate:            cellDecimal(row, columns[rateHeaderRate]),
			Category:        cellString(row, columns[rateHeaderCategory]),
		})
	}

	if len(entries) == 0 {
		return nil, ErrEmptySheet
	}

	return entries, nil
}

func indexRateHeaders(header []string) (map[string]int, error) {
	columns := map[string]int{
		rateHeaderItemCode:    -1,
		rateHeaderDescription: -1,
		rateHeaderUnit:        -1,
		rateHeaderRate:        -1,
		rateHeaderCategory:    -1,
	}

	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, known := columns[normalized]; known {
			columns[normalized] = i
		}
	}

	var missing []string
	for name, index := range columns {
		if index < 0 {
			missing = append(missing, strings.ToUpper(name))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}

	return columns, nil
}
