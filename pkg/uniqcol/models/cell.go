// Package models defines data structures shared by the uniqcol pipeline.
package models

import (
	"strconv"
	"time"
)

// CellKind identifies which field of a Cell carries its value.
type CellKind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell (integers included).
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a date or date-time cell.
	KindDate
	// KindError is a formula error cell such as #DIV/0!.
	KindError
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindError:
		return "error"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Date layouts used by Cell.String.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Cell is a single typed spreadsheet value.
type Cell struct {
	Kind CellKind
	// Text holds the value of text and error cells.
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// Error returns a formula error cell carrying its error code.
func Error(code string) Cell { return Cell{Kind: KindError, Text: code} }

// IsEmpty reports whether the cell stringifies to "".
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}

// String returns the canonical string form of the cell. Every kind maps to
// some string; empty cells map to "".
//
// Numbers use the shortest decimal form without an exponent, so 30.0
// becomes "30" and 0.1 stays "0.1". Dates at midnight render as
// 2006-01-02, others as 2006-01-02 15:04:05.
func (c Cell) String() string {
	switch c.Kind {
	case KindText, KindError:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindDate:
		h, m, s := c.Time.Clock()
		if h == 0 && m == 0 && s == 0 {
			return c.Time.Format(DateLayout)
		}
		return c.Time.Format(DateTimeLayout)
	default:
		return ""
	}
}
