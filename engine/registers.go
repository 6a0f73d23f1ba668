package engine

import (
	"fmt"
	"iter"
)

// Registers is one complete register file snapshot. A cycle reads the
// prior snapshot and installs a new one; nothing else mutates it.
type Registers struct {
	PC  uint8     // Macro program counter.
	ASR uint8     // Program memory address register.
	AR  uint16    // Accumulator.
	HR  uint16    // AR extension for double width shifts.
	GR  [4]uint16 // General registers GR0..GR3.
	IR  uint16    // Instruction register.
	UPC uint8     // Microprogram counter.
	USP uint8     // Micro subroutine return address.
	LC  uint8     // Loop counter.
}

// RegisterNames lists the registers in snapshot and display order.
var RegisterNames = []string{
	"PC", "ASR", "AR", "HR", "GR0", "GR1", "GR2", "GR3", "IR", "uPC", "uSP", "LC",
}

// Get returns a register by name, as listed in RegisterNames.
func (r *Registers) Get(name string) (value int, ok bool) {
	ptr8, ptr16 := r.field(name)
	switch {
	case ptr8 != nil:
		return int(*ptr8), true
	case ptr16 != nil:
		return int(*ptr16), true
	}
	return
}

// Set assigns a register by name, truncating the value to the register width.
func (r *Registers) Set(name string, value int) (ok bool) {
	ptr8, ptr16 := r.field(name)
	switch {
	case ptr8 != nil:
		*ptr8 = uint8(value)
		return true
	case ptr16 != nil:
		*ptr16 = uint16(value)
		return true
	}
	return
}

// Width returns the bit width of a named register.
func (r *Registers) Width(name string) int {
	ptr8, ptr16 := r.field(name)
	switch {
	case ptr8 != nil:
		return 8
	case ptr16 != nil:
		return 16
	}
	return 0
}

func (r *Registers) field(name string) (ptr8 *uint8, ptr16 *uint16) {
	switch name {
	case "PC":
		ptr8 = &r.PC
	case "ASR":
		ptr8 = &r.ASR
	case "AR":
		ptr16 = &r.AR
	case "HR":
		ptr16 = &r.HR
	case "GR0", "GR1", "GR2", "GR3":
		ptr16 = &r.GR[name[2]-'0']
	case "IR":
		ptr16 = &r.IR
	case "uPC":
		ptr8 = &r.UPC
	case "uSP":
		ptr8 = &r.USP
	case "LC":
		ptr8 = &r.LC
	}
	return
}

// All iterates the registers by name, in RegisterNames order.
func (r Registers) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, name := range RegisterNames {
			value, _ := r.Get(name)
			if !yield(name, value) {
				return
			}
		}
	}
}

// Flags are the condition flags. They are not part of the register file
// and keep their value until an operation redefines them.
type Flags struct {
	Z bool // Zero.
	N bool // Negative.
	O bool // Overflow.
	C bool // Carry.
	L bool // Loop counter is zero.
}

// FlagNames lists the flags in snapshot and display order.
var FlagNames = []string{"Z", "N", "O", "C", "L"}

// All iterates the flags by name, in FlagNames order.
func (f Flags) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		values := [...]bool{f.Z, f.N, f.O, f.C, f.L}
		for n, name := range FlagNames {
			if !yield(name, values[n]) {
				return
			}
		}
	}
}

// String renders the flags in FlagNames order, as '1' or '0'.
func (f Flags) String() (text string) {
	for _, set := range f.All() {
		if set {
			text += "1"
		} else {
			text += "0"
		}
	}
	return
}

// String renders the register file on one line.
func (r Registers) String() (text string) {
	for name, value := range r.All() {
		if len(text) != 0 {
			text += " "
		}
		if r.Width(name) == 8 {
			text += fmt.Sprintf("%v=%02X", name, value)
		} else {
			text += fmt.Sprintf("%v=%04X", name, value)
		}
	}
	return
}
