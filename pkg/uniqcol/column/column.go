// Package column resolves a header name to a column index and collects the
// unique values stored below it.
package column

import (
	"errors"

	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/parser"
)

var (
	// ErrNoHeader indicates the sheet has no rows, so no header row.
	ErrNoHeader = errors.New("sheet has no header row")
	// ErrColumnNotFound indicates no header cell matches the column name.
	ErrColumnNotFound = errors.New("no matching header cell")
)

// Resolve returns the index of the first header cell (row 0) whose string
// form equals name exactly.
func Resolve(sheet parser.Sheet, name string) (int, error) {
	rows := sheet.Rows()
	if len(rows) == 0 {
		return -1, ErrNoHeader
	}

	header := rows[0]
	for colIdx := 0; colIdx < header.Len(); colIdx++ {
		cell, ok := header.Cell(colIdx)
		if ok && cell.String() == name {
			return colIdx, nil
		}
	}
	return -1, ErrColumnNotFound
}

// Collect gathers the non-empty values at index from every row below the
// header. Rows too short to reach index are skipped. It also returns the
// number of data rows scanned.
func Collect(sheet parser.Sheet, index int) (*ValueSet, int) {
	set := NewValueSet()
	rows := sheet.Rows()
	if len(rows) <= 1 {
		return set, 0
	}

	for _, row := range rows[1:] {
		cell, ok := row.Cell(index)
		if !ok {
			continue
		}
		set.Add(cell.String())
	}
	return set, len(rows) - 1
}

// Unique resolves name and collects the values of that column.
func Unique(sheet parser.Sheet, name string) (set *ValueSet, index, scanned int, err error) {
	index, err = Resolve(sheet, name)
	if err != nil {
		return nil, -1, 0, err
	}
	set, scanned = Collect(sheet, index)
	return set, index, scanned, nil
}
