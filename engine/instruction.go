package engine

// Instruction is the macro-instruction held in IR.
//
//	15..12  OP   opcode, indexes K1
//	11..10  GRx  general register
//	 9..8   M    addressing mode, indexes K2
//	 7..0   ADR  address
type Instruction uint16

// MakeInstruction encodes a macro-instruction.
func MakeInstruction(op, grx, m, adr uint8) Instruction {
	return Instruction(uint16(op&0xf)<<12 | uint16(grx&0x3)<<10 | uint16(m&0x3)<<8 | uint16(adr))
}

// Op returns the opcode field.
func (ins Instruction) Op() uint8 {
	return uint8((ins >> 12) & 0xf)
}

// GRx returns the register field.
func (ins Instruction) GRx() uint8 {
	return uint8((ins >> 10) & 0x3)
}

// M returns the mode field.
func (ins Instruction) M() uint8 {
	return uint8((ins >> 8) & 0x3)
}

// Addr returns the address field.
func (ins Instruction) Addr() uint8 {
	return uint8(ins & 0xff)
}
