// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives an engine: cycle stepping, stop conditions,
// cycle limits and per-cycle recording.
package emulator

import (
	"iter"
	"log"
	"maps"

	"github.com/ezrec/microemu/engine"
	"github.com/ezrec/microemu/internal"
)

var _emulator_defines = map[string]int{
	"PM_SIZE": engine.PM_SIZE,
	"UM_SIZE": engine.UM_SIZE,
	"K1_SIZE": engine.K1_SIZE,
	"K2_SIZE": engine.K2_SIZE,
}

// Recorder receives the machine state after every cycle.
type Recorder interface {
	Record(cycle uint64, mi engine.Micro, regs engine.Registers, flags engine.Flags) error
}

// Emulator state. Engine + initial image + stop conditions.
type Emulator struct {
	Verbose        bool          // If set, enables verbose logging.
	*engine.Engine               // Reference to the engine simulation.
	Image          *engine.Image // Image loaded by Reset.

	Recorder  Recorder   // If set, records every cycle.
	Until     *Condition // If set, stops once the condition holds.
	MaxCycles uint64     // If not zero, the cycle limit.
}

// NewEmulator creates a new emulator for an image.
func NewEmulator(img *engine.Image) (emu *Emulator) {
	if img == nil {
		img = &engine.Image{}
	}

	emu = &Emulator{
		Engine: engine.NewEngine(img),
		Image:  img,
	}

	return
}

// Defines returns an iterator over the named constants and registers.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.Concat2(maps.All(_emulator_defines), emu.Registers().All())
}

// Reset reloads the engine from the image.
func (emu *Emulator) Reset() (err error) {
	emu.Engine.Verbose = emu.Verbose
	emu.Engine.Reset(emu.Image)

	return
}

// Tick performs a single cycle of the emulator. done is set once the
// engine halts or the Until condition holds.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Engine.Verbose = emu.Verbose

	cycle := emu.Cycles()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Cycle: cycle, Err: err}
		}
	}()

	if emu.Halted() {
		done = true
		return
	}

	if emu.MaxCycles != 0 && cycle >= emu.MaxCycles {
		done = true
		err = ErrCycleLimit
		return
	}

	mi := emu.Current()
	emu.Step()
	cycle = emu.Cycles()

	if emu.Recorder != nil {
		err = emu.Recorder.Record(cycle, mi, emu.Registers(), emu.Flags())
		if err != nil {
			return
		}
	}

	if emu.Halted() {
		done = true
		return
	}

	if emu.Until != nil {
		done, err = emu.Until.Eval(emu.Engine)
		if done && emu.Verbose {
			log.Printf("emulator: $(%v) at cycle %v", emu.Until.Expr, cycle)
		}
	}

	return
}

// Run ticks until done, or an error.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
