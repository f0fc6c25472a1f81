package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/models"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"data.ods", FormatODS},
		{"dir/data.ods", FormatODS},
		{"data..ods", FormatODS},
		{"data.xlsx", FormatXLSX},
		{"data.ODS", FormatXLSX},
		{"data.csv", FormatXLSX},
		{"data", FormatXLSX},
		{".ods", FormatXLSX},
		{"dir/.ods", FormatXLSX},
		{"data.ods.bak", FormatXLSX},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFor(tt.path), "FormatFor(%q)", tt.path)
	}
}

func TestOpenDispatchesOnExtension(t *testing.T) {
	odsPath := writeODS(t, `<table:table table:name="Sheet1"/>`)
	wb, err := Open(odsPath)
	require.NoError(t, err)
	assert.Equal(t, FormatODS, wb.Format())
	require.NoError(t, wb.Close())

	xlsxPath := writeXLSX(t, 1, map[string][][]interface{}{"Sheet1": {{"Name"}}})
	wb, err = Open(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, wb.Format())
	require.NoError(t, wb.Close())
}

func TestUsedRange(t *testing.T) {
	rows := []Row{
		cellRow(nil),
		cellRow{models.Empty(), models.Text("")},
		cellRow{models.Empty(), models.Text("Name")},
		cellRow{models.Text("Alice")},
		cellRow(nil),
	}

	used := usedRange(rows)
	require.Len(t, used, 3)
	cell, ok := used[0].Cell(1)
	require.True(t, ok)
	assert.Equal(t, "Name", cell.String())

	assert.Equal(t, -1, findFirstUsedRow([]Row{cellRow(nil)}))
	assert.Nil(t, usedRange([]Row{cellRow(nil), cellRow{models.Empty()}}))
	assert.Nil(t, usedRange(nil))
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		name     string
		id       int
		custom   *string
		expected bool
	}{
		{"general", 0, nil, false},
		{"number", 2, nil, false},
		{"short date", 14, nil, true},
		{"d-mmm-yy", 15, nil, true},
		{"mmm-yy", 17, nil, true},
		{"time", 20, nil, false},
		{"date time", 22, nil, true},
		{"elapsed", 46, nil, false},
		{"custom iso", 164, custom("yyyy-mm-dd"), true},
		{"custom locale", 164, custom("[$-409]mmmm d, yyyy;@"), true},
		{"custom time", 164, custom("hh:mm:ss"), false},
		{"quoted literal", 164, custom(`0.00 "days"`), false},
		{"escaped", 164, custom(`0\d`), false},
		{"second section", 164, custom(`0;"yd"d`), false},
		{"empty custom uses id", 14, custom(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDateNumFmt(tt.id, tt.custom))
		})
	}
}
