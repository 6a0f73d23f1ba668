package engine

import (
	"fmt"
)

// Microinstruction field positions.
const (
	MICRO_ALU_SHIFT = 21
	MICRO_ALU_MASK  = 0xf
	MICRO_TB_SHIFT  = 18
	MICRO_TB_MASK   = 0x7
	MICRO_FB_SHIFT  = 15
	MICRO_FB_MASK   = 0x7
	MICRO_S_BIT     = 14
	MICRO_P_BIT     = 13
	MICRO_LC_SHIFT  = 11
	MICRO_LC_MASK   = 0x3
	MICRO_SEQ_SHIFT = 7
	MICRO_SEQ_MASK  = 0xf
	MICRO_ADR_MASK  = 0x7f
)

// Micro is a single 32-bit control store word.
type Micro uint32

// MakeMicro encodes a microinstruction from its fields.
func MakeMicro(alu AluOp, tb BusSource, fb BusDest, s, p bool, lc LoopOp, seq SeqOp, adr uint8) Micro {
	word := (uint32(alu)&MICRO_ALU_MASK)<<MICRO_ALU_SHIFT |
		(uint32(tb)&MICRO_TB_MASK)<<MICRO_TB_SHIFT |
		(uint32(fb)&MICRO_FB_MASK)<<MICRO_FB_SHIFT |
		(uint32(lc)&MICRO_LC_MASK)<<MICRO_LC_SHIFT |
		(uint32(seq)&MICRO_SEQ_MASK)<<MICRO_SEQ_SHIFT |
		uint32(adr)&MICRO_ADR_MASK
	if s {
		word |= 1 << MICRO_S_BIT
	}
	if p {
		word |= 1 << MICRO_P_BIT
	}
	return Micro(word)
}

// MakeMicroLiteral encodes a literal-mode microinstruction, which places
// the low 16 bits of the word on the bus.
func MakeMicroLiteral(alu AluOp, literal uint16) Micro {
	// Bit 15 of the literal shares its position with the low bit of FB,
	// which is not decoded in literal mode.
	return Micro((uint32(alu)&MICRO_ALU_MASK)<<MICRO_ALU_SHIFT |
		uint32(TB_LITERAL)<<MICRO_TB_SHIFT |
		uint32(literal))
}

// Alu returns the ALU operation.
func (mi Micro) Alu() AluOp {
	return AluOp((uint32(mi) >> MICRO_ALU_SHIFT) & MICRO_ALU_MASK)
}

// Source returns the bus source selector.
func (mi Micro) Source() BusSource {
	return BusSource((uint32(mi) >> MICRO_TB_SHIFT) & MICRO_TB_MASK)
}

// Dest returns the bus destination selector.
func (mi Micro) Dest() BusDest {
	return BusDest((uint32(mi) >> MICRO_FB_SHIFT) & MICRO_FB_MASK)
}

// Select is set when the general register index comes from the M field
// of the instruction register, rather than the GRx field.
func (mi Micro) Select() bool {
	return (uint32(mi)>>MICRO_S_BIT)&1 == 1
}

// Increment is set when PC auto-increments this cycle.
func (mi Micro) Increment() bool {
	return (uint32(mi)>>MICRO_P_BIT)&1 == 1
}

// Loop returns the loop counter control.
func (mi Micro) Loop() LoopOp {
	return LoopOp((uint32(mi) >> MICRO_LC_SHIFT) & MICRO_LC_MASK)
}

// Seq returns the sequencer control.
func (mi Micro) Seq() SeqOp {
	return SeqOp((uint32(mi) >> MICRO_SEQ_SHIFT) & MICRO_SEQ_MASK)
}

// Addr returns the 7-bit jump address.
func (mi Micro) Addr() uint8 {
	return uint8(uint32(mi) & MICRO_ADR_MASK)
}

// Literal returns the low 16 bits, used as the bus value in literal mode.
func (mi Micro) Literal() uint16 {
	return uint16(mi)
}

// LoopImmediate returns the low 8 bits, loaded into LC by LC_IMM.
func (mi Micro) LoopImmediate() uint8 {
	return uint8(mi)
}

// String returns a dotted rendering of the microinstruction fields.
func (mi Micro) String() string {
	if mi.Source() == TB_LITERAL {
		return fmt.Sprintf("%v.%v.0x%04x", mi.Alu(), mi.Source(), mi.Literal())
	}

	flags := ""
	if mi.Select() {
		flags += "s"
	}
	if mi.Increment() {
		flags += "p"
	}
	if flags == "" {
		flags = "-"
	}

	return fmt.Sprintf("%v.%v.%v.%v.%v.%v.0x%02x",
		mi.Alu(), mi.Source(), mi.Dest(), flags, mi.Loop(), mi.Seq(), mi.Addr())
}
