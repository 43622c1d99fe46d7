package ingest

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMasterRates(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ITEMCODE", "ITEM DESCRIPTION", "UM", "Rate", "Category"},
		{"202-00090", "Removal of Structure", "LS", 1500, "Removals"},
		{"203-00010", "Unclassified Excavation", "CY", 22.5, "Earthwork"},
		{"", "blank code is skipped", "EA", 1, "Misc"},
	})

	entries, err := ParseMasterRates(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "202-00090", entries[0].ItemCode)
	assert.Equal(t, "Removals", entries[0].Category)
	assert.True(t, decimal.RequireFromString("22.5").Equal(entries[1].Rate))
}

func TestParseMasterRatesMissingColumns(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ITEMCODE", "Rate"},
		{"202-00090", 1500},
	})

	_, err := ParseMasterRates(bytes.NewReader(buf))
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"CATEGORY", "ITEM DESCRIPTION", "UM"}, missing.Columns)
}

func TestParseMasterRatesHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ITEMCODE", "ITEM DESCRIPTION", "UM", "Rate", "Category"},
	})

	_, err := ParseMasterRates(bytes.NewReader(buf))
	assert.ErrorIs(t, err, ErrEmptySheet)
}
