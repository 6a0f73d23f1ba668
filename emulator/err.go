package emulator

import (
	"errors"

	"github.com/ezrec/microemu/translate"
)

var f = translate.From

var (
	ErrCycleLimit = errors.New(f("cycle limit reached"))
	ErrCondition  = errors.New(f("condition not boolean"))
)

// ErrRuntime indicates the cycle of a runtime error.
type ErrRuntime struct {
	Cycle uint64
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d %v", err.Cycle, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpression indicates a stop condition that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrAddress indicates a program memory address outside of 0..PM_SIZE-1.
type ErrAddress struct {
	Addr int
}

func (err *ErrAddress) Error() string {
	return f("pm address %d out of range", err.Addr)
}
