package parser

import (
	"slices"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads Office Open XML workbooks through excelize.
type xlsxWorkbook struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

// OpenXLSX opens an xlsx workbook.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb := &xlsxWorkbook{
		f:          f,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (wb *xlsxWorkbook) Format() Format { return FormatXLSX }

func (wb *xlsxWorkbook) SheetNames() []string { return wb.f.GetSheetList() }

// Sheet loads the raw cell values of a sheet. Cells are typed on access.
func (wb *xlsxWorkbook) Sheet(name string) (Sheet, error) {
	// excelize resolves sheet names case-insensitively; we do not.
	names := wb.f.GetSheetList()
	if !slices.Contains(names, name) {
		return nil, sheetNotFound(names)
	}

	raw, err := wb.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(raw))
	for rowIdx, cols := range raw {
		rows[rowIdx] = &xlsxRow{
			wb:    wb,
			sheet: name,
			num:   rowIdx + 1, // 1-based row number
			raw:   cols,
		}
	}

	return &grid{name: name, rows: usedRange(rows)}, nil
}

func (wb *xlsxWorkbook) Close() error {
	return wb.f.Close()
}

// isDateStyle reports whether the cell's style formats numbers as dates.
func (wb *xlsxWorkbook) isDateStyle(sheet, cellName string) bool {
	idx, err := wb.f.GetCellStyle(sheet, cellName)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := wb.dateStyles[idx]; ok {
		return isDate
	}

	style, err := wb.f.GetStyle(idx)
	isDate := err == nil && style != nil && isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	wb.dateStyles[idx] = isDate
	return isDate
}
