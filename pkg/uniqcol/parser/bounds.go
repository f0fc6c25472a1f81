package parser

// findFirstUsedRow returns the index of the first row holding at least one
// non-empty cell, or -1 when every row is empty.
func findFirstUsedRow(rows []Row) int {
	for rowIdx, row := range rows {
		if !rowIsEmpty(row) {
			return rowIdx
		}
	}
	return -1
}

// usedRange drops the empty rows above the data so that row 0 is the
// header row. Trailing empty rows are kept; they yield no values.
func usedRange(rows []Row) []Row {
	minRow := findFirstUsedRow(rows)
	if minRow < 0 {
		return nil
	}
	return rows[minRow:]
}

func rowIsEmpty(row Row) bool {
	for colIdx := 0; colIdx < row.Len(); colIdx++ {
		if cell, ok := row.Cell(colIdx); ok && !cell.IsEmpty() {
			return false
		}
	}
	return true
}
