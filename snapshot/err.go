package snapshot

import (
	"errors"

	"github.com/ezrec/microemu/translate"
)

var f = translate.From

var (
	// ErrBadFormat is matched by every snapshot parse error.
	ErrBadFormat = errors.New(f("bad format"))

	ErrNumber    = errors.New(f("not a number"))
	ErrRange     = errors.New(f("value out of range"))
	ErrTruncated = errors.New(f("snapshot truncated"))
	ErrTrailing  = errors.New(f("trailing data"))
)

// ErrSyntax locates a snapshot parse error.
type ErrSyntax struct {
	LineNo int    // Line number, starting at 1.
	Line   string // Text of the line.
	Field  string // Field being parsed.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v: %v", err.LineNo, err.Line, err.Field, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
