// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"fmt"
	"log"
)

// Engine is the microprogrammed machine: memories, register file and
// flags, advanced one micro-cycle per Step.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	program [PM_SIZE]uint16
	micro   [UM_SIZE]Micro
	k1      [K1_SIZE]uint8
	k2      [K2_SIZE]uint8

	regs   Registers
	flags  Flags
	cycles uint64
	halted bool
}

// NewEngine creates an engine loaded from an image. A nil image gives
// an all-zero machine.
func NewEngine(img *Image) (e *Engine) {
	e = &Engine{}
	e.Reset(img)

	return
}

// Reset reloads the engine from an image, clearing the cycle counter and
// the halted state.
func (e *Engine) Reset(img *Image) {
	if img == nil {
		img = &Image{}
	}

	e.program = img.Program
	e.micro = img.Micro
	e.k1 = img.K1
	e.k2 = img.K2
	e.regs = img.Registers
	e.flags = img.Flags
	e.cycles = 0
	e.halted = false

	if e.Verbose {
		log.Printf("engine: reset")
	}
}

// Snapshot returns the current machine state as an image.
func (e *Engine) Snapshot() *Image {
	return &Image{
		Program:   e.program,
		Micro:     e.micro,
		K1:        e.k1,
		K2:        e.k2,
		Registers: e.regs,
		Flags:     e.flags,
	}
}

// Registers returns the current register file.
func (e *Engine) Registers() Registers {
	return e.regs
}

// Flags returns the current flags.
func (e *Engine) Flags() Flags {
	return e.flags
}

// Cycles returns the number of cycles executed since the last reset.
func (e *Engine) Cycles() uint64 {
	return e.cycles
}

// Halted is true once the sequencer executed SEQ_HALT.
func (e *Engine) Halted() bool {
	return e.halted
}

// Memory returns the program memory, which may be modified in place.
func (e *Engine) Memory() *[PM_SIZE]uint16 {
	return &e.program
}

// Microcode returns the control store word at addr.
func (e *Engine) Microcode(addr uint8) Micro {
	return e.micro[addr&UPC_MASK]
}

// Current returns the microinstruction that the next Step executes.
func (e *Engine) Current() Micro {
	return e.Microcode(e.regs.UPC)
}

// K1 returns an opcode dispatch entry.
func (e *Engine) K1(op uint8) uint8 {
	return e.k1[op&(K1_SIZE-1)]
}

// K2 returns a mode dispatch entry.
func (e *Engine) K2(m uint8) uint8 {
	return e.k2[m&(K2_SIZE-1)]
}

// Step executes one micro-cycle. Once halted, Step does nothing.
//
// The cycle runs in a fixed order: decode, bus selection, write-back,
// PC increment, loop counter, sequencer, ALU. In literal mode only the
// ALU runs. Every stage reads the register file and flags from before
// the cycle, and the new register file is installed at the end.
func (e *Engine) Step() {
	if e.halted {
		return
	}
	e.cycles++

	prev := e.regs
	next := prev
	flags := e.flags

	mi := e.Current()
	ins := Instruction(prev.IR)

	sel := ins.GRx()
	if mi.Select() {
		sel = ins.M()
	}

	if e.Verbose {
		log.Printf("engine: %02x: %v ir=%04x", prev.UPC, mi, prev.IR)
	}

	bus := e.bus(mi, &prev, sel)

	var halt bool
	if mi.Source() != TB_LITERAL {
		e.writeBack(mi.Dest(), bus, sel, &prev, &next)

		// Overrides any PC write-back.
		if mi.Increment() {
			next.PC = prev.PC + 1
		}

		switch mi.Loop() {
		case LC_KEEP:
		case LC_DEC:
			next.LC = prev.LC - 1
		case LC_BUS:
			next.LC = uint8(bus)
		case LC_IMM:
			next.LC = mi.LoopImmediate()
		default:
			panic("unknown loop op")
		}

		halt = sequence(mi, ins, &e.k1, &e.k2, &prev, e.flags, &next)
		flags.L = next.LC == 0
	}

	doAlu(mi.Alu(), &prev, bus, &next, &flags)

	e.regs = next
	e.flags = flags

	if halt {
		e.halted = true
		if e.Verbose {
			log.Printf("engine: halted after %v cycles", e.cycles)
		}
	}
}

// bus selects the bus value for the cycle.
func (e *Engine) bus(mi Micro, prev *Registers, sel uint8) uint16 {
	switch mi.Source() {
	case TB_ONES:
		return 0xffff
	case TB_IR:
		return prev.IR
	case TB_PM:
		return e.program[prev.ASR]
	case TB_PC:
		return uint16(prev.PC)
	case TB_AR:
		return prev.AR
	case TB_HR:
		return prev.HR
	case TB_GR:
		return prev.GR[sel]
	case TB_LITERAL:
		return mi.Literal()
	}

	panic("unknown bus source")
}

// writeBack routes the bus value to its destination.
func (e *Engine) writeBack(dest BusDest, bus uint16, sel uint8, prev *Registers, next *Registers) {
	switch dest {
	case FB_NONE, FB_RESERVED:
	case FB_IR:
		next.IR = bus
	case FB_PM:
		e.program[prev.ASR] = bus
	case FB_PC:
		next.PC = uint8(bus)
	case FB_HR:
		next.HR = bus
	case FB_GR:
		next.GR[sel] = bus
	case FB_ASR:
		next.ASR = uint8(bus)
	default:
		panic("unknown bus destination")
	}
}

// String returns the current machine state as a string.
func (e *Engine) String() (text string) {
	for name, value := range e.regs.All() {
		if e.regs.Width(name) == 8 {
			text += fmt.Sprintf("% 6s: %02X\n", name, value)
		} else {
			text += fmt.Sprintf("% 6s: %04X\n", name, value)
		}
	}
	text += fmt.Sprintf("% 6s: %v\n", "ZNOCL", e.flags)
	text += fmt.Sprintf("% 6s: %v\n", "cycles", e.cycles)
	text += fmt.Sprintf("% 6s: %v\n", "halted", e.halted)

	return
}
