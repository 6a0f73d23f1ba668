package trace

import (
	"errors"

	"github.com/ezrec/microemu/translate"
)

var f = translate.From

var (
	ErrExists      = errors.New(f("trace database already exists"))
	ErrNotOpen     = errors.New(f("trace database not open"))
	ErrAlreadyOpen = errors.New(f("trace database already open"))
)

// ErrDatabase wraps a failed database operation.
type ErrDatabase struct {
	Path string
	Op   string
	Err  error
}

func (err *ErrDatabase) Error() string {
	return f("%v: %v: %v", err.Path, err.Op, err.Err)
}

func (err *ErrDatabase) Unwrap() error {
	return err.Err
}
