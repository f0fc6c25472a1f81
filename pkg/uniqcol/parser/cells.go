package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/models"
	"github.com/xuri/excelize/v2"
)

// xlsxRow is one worksheet row holding raw cell values.
type xlsxRow struct {
	wb    *xlsxWorkbook
	sheet string
	num   int
	raw   []string
}

func (r *xlsxRow) Len() int { return len(r.raw) }

// Cell decodes the cell at col. The cell type recorded in the worksheet
// decides how the raw value is read.
func (r *xlsxRow) Cell(col int) (models.Cell, bool) {
	if col < 0 || col >= len(r.raw) {
		return models.Cell{}, false
	}
	value := r.raw[col]
	if value == "" {
		return models.Empty(), true
	}

	cellName, err := excelize.CoordinatesToCellName(col+1, r.num)
	if err != nil {
		return models.Text(value), true
	}
	cellType, err := r.wb.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return models.Text(value), true
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(value == "1" || strings.EqualFold(value, "true")), true
	case excelize.CellTypeDate:
		if t, ok := parseISODate(value); ok {
			return models.Date(t), true
		}
		return models.Text(value), true
	case excelize.CellTypeError:
		return models.Error(value), true
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return r.numberCell(cellName, value), true
	default:
		return models.Text(value), true
	}
}

// numberCell decodes a numeric raw value, turning date-formatted serials
// into dates.
func (r *xlsxRow) numberCell(cellName, value string) models.Cell {
	v, ok := parseNumber(value)
	if !ok {
		return models.Text(value)
	}
	if r.wb.isDateStyle(r.sheet, cellName) {
		if t, err := excelize.ExcelDateToTime(v, r.wb.date1904); err == nil {
			return models.Date(t)
		}
	}
	return models.Number(v)
}

// parseNumber parses a raw numeric value. Integers are tried first so
// that large whole numbers keep their exact value where float64 can hold it.
func parseNumber(s string) (float64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate parses ISO 8601 dates as stored in xlsx "d" cells and in
// ods office:date-value attributes.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
