package models

// Result describes one completed column extraction.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetName is the sheet the values were read from.
	SheetName string
	// ColumnName is the header text that was matched.
	ColumnName string
	// ColumnIndex is the resolved column index (0-based).
	ColumnIndex int
	// RowsScanned counts data rows below the header.
	RowsScanned int
	// Values holds the unique non-empty values in byte order.
	Values []string
	// OutputPath is where the values were written, empty if not written.
	OutputPath string
}
