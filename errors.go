package inventory

import (
	"errors"
	"fmt"
)

// ErrKind classifies the failures a ledger operation can report.
type ErrKind int

const (
	// ErrInvalidItem reports an empty or reserved item name.
	ErrInvalidItem ErrKind = iota
	// ErrNotFound reports a removal targeting an item not in stock.
	ErrNotFound
	// ErrFileMissing reports a load from a path with no file.
	ErrFileMissing
	// ErrBadSyntax reports a stock document that is not a valid JSON object.
	ErrBadSyntax
	// ErrIO reports a read or write failure on the stock file.
	ErrIO
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidItem:
		return "invalid item"
	case ErrNotFound:
		return "not found"
	case ErrFileMissing:
		return "file missing"
	case ErrBadSyntax:
		return "bad syntax"
	case ErrIO:
		return "io failure"
	default:
		return "unknown"
	}
}

// StockError is the status value reported by ledger operations. Operations
// never panic and never leave the ledger in an unsafe state, so callers are
// free to ignore it: the failure has already been logged.
type StockError struct {
	Kind ErrKind
	Item string // item name, for mutation failures
	Path string // file path, for persistence failures
	Err  error  // underlying cause, if any
}

func (e *StockError) Error() string {
	switch {
	case e.Item != "":
		return fmt.Sprintf("%s: item %q", e.Kind, e.Item)
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	default:
		return e.Kind.String()
	}
}

func (e *StockError) Unwrap() error { return e.Err }

// IsKind reports whether err is a StockError of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var se *StockError
	return errors.As(err, &se) && se.Kind == kind
}
