package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"costbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func exportItem(line int, itemCode, unit, description, category string, quantity, price int64) models.LineItem {
	li := models.LineItem{
		Line:        intPtr(line),
		Item:        itemCode,
		Quantity:    decimal.NewFromInt(quantity),
		Unit:        unit,
		Description: description,
		Category:    category,
		Price:       decimal.NewFromInt(price),
		Proposal:    "bid.csv",
	}
	li.RecalculateTotal()
	return li
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestToCSV_Layout(t *testing.T) {
	items := []models.LineItem{
		exportItem(1, "A100", "m3", "Footing concrete", "Concrete", 2, 5),
		exportItem(2, "B200", "kg", "Rebar", "Steel", 3, 10),
	}

	data, err := ToCSV("bid.csv", items, decimal.NewFromInt(40))
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 4) // header + 2 rows + total

	assert.Equal(t, []string{"Line", "Item", "Quantity", "Unit", "Description", "Category", "Price"}, records[0])
	assert.Equal(t, []string{"1", "A100", "2", "m3", "Footing concrete", "Concrete", "5.00"}, records[1])
	assert.Equal(t, []string{"2", "B200", "3", "kg", "Rebar", "Steel", "10.00"}, records[2])
	assert.Equal(t, []string{"", "", "", "", "", "Total Cost", "40.00"}, records[3])
}

func TestToCSV_AbsentValuesRenderNA(t *testing.T) {
	item := models.LineItem{
		Item:     "X999",
		Proposal: "bid.csv",
	}
	item.RecalculateTotal()

	data, err := ToCSV("bid.csv", []models.LineItem{item}, decimal.Zero)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3)

	row := records[1]
	assert.Equal(t, "N/A", row[0]) // missing line number
	assert.Equal(t, "N/A", row[2]) // zero quantity
	assert.Equal(t, "N/A", row[3]) // missing unit
	assert.Equal(t, "N/A", row[4]) // missing description
	assert.Equal(t, "N/A", row[5]) // missing category
	assert.Equal(t, "0.00", row[6])
}

func TestToCSV_RowOrderFollowsInput(t *testing.T) {
	items := []models.LineItem{
		exportItem(3, "C300", "ea", "Third", "Electrical", 1, 1),
		exportItem(1, "A100", "ea", "First", "Concrete", 1, 1),
	}

	data, err := ToCSV("bid.csv", items, decimal.NewFromInt(2))
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Equal(t, "C300", records[1][1])
	assert.Equal(t, "A100", records[2][1])
}

func TestToCSV_RefusesEmptyExport(t *testing.T) {
	_, err := ToCSV("", []models.LineItem{exportItem(1, "A100", "ea", "x", "y", 1, 1)}, decimal.Zero)
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = ToCSV("bid.csv", nil, decimal.Zero)
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = ToCSV("bid.csv", []models.LineItem{}, decimal.Zero)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestToCSV_MoneyRendersTwoDecimals(t *testing.T) {
	item := exportItem(1, "A100", "ea", "x", "y", 3, 0)
	item.SetPrice(decimal.RequireFromString("12.5"))

	data, err := ToCSV("bid.csv", []models.LineItem{item}, item.TotalPrice)
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Equal(t, "12.50", records[1][6])
	assert.Equal(t, "37.50", records[2][6])
}
