package uniqcol

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Every kind is fatal to the run.
type Kind string

const (
	KindBadArgs        Kind = "bad_args"
	KindOpen           Kind = "open"
	KindSheetNotFound  Kind = "sheet_not_found"
	KindColumnNotFound Kind = "column_not_found"
	KindWrite          Kind = "write"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrBadArgs        = errors.New("wrong number of arguments")
	ErrOpen           = errors.New("cannot open workbook")
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrWrite          = errors.New("cannot write output")
)

var kindSentinels = map[Kind]error{
	KindBadArgs:        ErrBadArgs,
	KindOpen:           ErrOpen,
	KindSheetNotFound:  ErrSheetNotFound,
	KindColumnNotFound: ErrColumnNotFound,
	KindWrite:          ErrWrite,
}

// Error is a failure of one pipeline stage.
type Error struct {
	Kind Kind
	// Name is the path, sheet or column the failure concerns.
	Name string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindBadArgs:
		msg = ErrBadArgs.Error()
	case KindOpen:
		msg = fmt.Sprintf("cannot open workbook %q", e.Name)
	case KindSheetNotFound:
		msg = fmt.Sprintf("sheet %q not found", e.Name)
	case KindColumnNotFound:
		msg = fmt.Sprintf("column %q not found", e.Name)
	case KindWrite:
		msg = fmt.Sprintf("cannot write %q", e.Name)
	default:
		msg = fmt.Sprintf("%s %q", e.Kind, e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// NewError creates a new Error.
func NewError(kind Kind, name string, err error) *Error {
	return &Error{
		Kind: kind,
		Name: name,
		Err:  err,
	}
}
