package emulator

import (
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/microemu/engine"
	"github.com/ezrec/microemu/internal"
)

// Condition is a boolean Starlark expression over the machine state:
// registers by name (PC, AR, GR0, uPC, ...), flags (Z, N, O, C, L),
// 'cycles', 'halted', the emulator defines, and pm(addr) for program
// memory.
type Condition struct {
	Expr string
}

// NewCondition checks that expr evaluates to a boolean, and returns it
// as a condition.
func NewCondition(expr string) (cond *Condition, err error) {
	check := &Condition{Expr: expr}

	_, err = check.Eval(engine.NewEngine(nil))
	if err != nil {
		return
	}

	cond = check
	return
}

// environment predeclares the machine state for an expression.
func environment(e *engine.Engine) (env starlark.StringDict) {
	env = starlark.StringDict{}

	for name, value := range internal.Concat2(maps.All(_emulator_defines), e.Registers().All()) {
		env[name] = starlark.MakeInt(value)
	}
	for name, set := range e.Flags().All() {
		env[name] = starlark.Bool(set)
	}

	env["cycles"] = starlark.MakeUint64(e.Cycles())
	env["halted"] = starlark.Bool(e.Halted())
	env["pm"] = starlark.NewBuiltin("pm", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
		if err != nil {
			return nil, err
		}
		if addr < 0 || addr >= engine.PM_SIZE {
			return nil, &ErrAddress{Addr: addr}
		}
		return starlark.MakeInt(int(e.Memory()[addr])), nil
	})

	return
}

// Eval evaluates the condition against the engine state.
func (cond *Condition) Eval(e *engine.Engine) (ok bool, err error) {
	thread := starlark.Thread{Name: "condition"}
	opts := syntax.FileOptions{}
	prog := "rc=" + cond.Expr + "\n"

	dict, err := starlark.ExecFileOptions(&opts, &thread, "condition", prog, environment(e))
	if err != nil {
		err = &ErrExpression{Expr: cond.Expr, Err: err}
		return
	}

	rc, is_bool := dict["rc"].(starlark.Bool)
	if !is_bool {
		err = &ErrExpression{Expr: cond.Expr, Err: ErrCondition}
		return
	}

	ok = bool(rc)
	return
}
