// Package parser opens spreadsheet containers and exposes their sheets as
// grids of typed cells.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/models"
)

// ErrSheetNotFound indicates that no sheet carries the requested name.
var ErrSheetNotFound = errors.New("no such sheet")

// Format is a supported container format.
type Format string

const (
	// FormatXLSX is Office Open XML (.xlsx), the default format.
	FormatXLSX Format = "xlsx"
	// FormatODS is OpenDocument Spreadsheet (.ods).
	FormatODS Format = "ods"
)

// Workbook is an opened, read-only spreadsheet container.
type Workbook interface {
	// Format reports which reader opened the workbook.
	Format() Format
	// SheetNames lists sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the sheet named exactly name (case-sensitive).
	Sheet(name string) (Sheet, error)
	Close() error
}

// Sheet is a two-dimensional grid of cells. Row 0 is the first row of
// the used range and serves as the header row.
type Sheet interface {
	Name() string
	Rows() []Row
}

// Row is one sheet row. Rows may be shorter than the header row.
type Row interface {
	// Len is the number of cells present in the row.
	Len() int
	// Cell returns the cell at col, or false when the row is shorter.
	Cell(col int) (models.Cell, bool)
}

// FormatFor selects a format from the file extension. Only ".ods" selects
// the OpenDocument reader; every other extension, and none at all, falls
// through to the xlsx reader.
func FormatFor(path string) Format {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	// A dot-file such as ".ods" has no extension.
	if ext == base {
		return FormatXLSX
	}
	if ext == ".ods" {
		return FormatODS
	}
	return FormatXLSX
}

// Open opens the workbook at path with the reader chosen by FormatFor.
func Open(path string) (Workbook, error) {
	switch FormatFor(path) {
	case FormatODS:
		return OpenODS(path)
	default:
		return OpenXLSX(path)
	}
}

// sheetNotFound builds the error returned when name is not among names.
func sheetNotFound(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w (workbook has no sheets)", ErrSheetNotFound)
	}
	return fmt.Errorf("%w (available: %s)", ErrSheetNotFound, strings.Join(names, ", "))
}

// grid is an in-memory Sheet.
type grid struct {
	name string
	rows []Row
}

func (g *grid) Name() string { return g.name }

func (g *grid) Rows() []Row { return g.rows }

// cellRow is a Row backed by already decoded cells.
type cellRow []models.Cell

func (r cellRow) Len() int { return len(r) }

func (r cellRow) Cell(col int) (models.Cell, bool) {
	if col < 0 || col >= len(r) {
		return models.Cell{}, false
	}
	return r[col], true
}
