package engine

import (
	"math/bits"
)

// bit7 is the carry chain tap used by the add and shift codes.
func bit7(value uint16) bool {
	return value&0x80 != 0
}

func bit0(value uint16) bool {
	return value&1 != 0
}

// setZN sets Z and N from a 16-bit result.
func (f *Flags) setZN(value uint16) {
	f.Z = value == 0
	f.N = value&0x8000 != 0
}

// setZN32 sets Z and N from a 32-bit AR:HR result.
func (f *Flags) setZN32(value uint32) {
	f.Z = value == 0
	f.N = value&0x8000_0000 != 0
}

// doAlu performs the ALU operation. Operands come only from the prior
// register file; the result lands in next.AR (and next.HR for the
// double width shifts), flags are updated in place.
func doAlu(op AluOp, prev *Registers, bus uint16, next *Registers, flags *Flags) {
	ar := prev.AR
	hr := prev.HR

	var result uint16

	switch op {
	case ALU_OP_NOP:
		result = ar
	case ALU_OP_LOAD:
		result = bus
	case ALU_OP_NOT:
		result = ^bus
	case ALU_OP_CLEAR:
		result = 0
		flags.Z = true
		flags.N = false
	case ALU_OP_ADD:
		result = ar + bus
		flags.setZN(result)
		flags.C = int16(result) <= int16(ar)
		flags.O = bit7(bus) == bit7(result) && bit7(ar) != bit7(result)
	case ALU_OP_ADDNO:
		result = ar + bus
		flags.setZN(result)
		flags.C = int16(result) <= int16(ar)
	case ALU_OP_AND:
		result = ar & bus
		flags.setZN(result)
	case ALU_OP_OR:
		result = ar | bus
		flags.setZN(result)
	case ALU_OP_ADDNF:
		result = ar + bus
	case ALU_OP_LSL:
		result = ar << 1
		flags.C = bit7(ar)
		flags.setZN(result)
	case ALU_OP_LSLD:
		pair := (uint32(ar)<<16 | uint32(hr)) << 1
		next.HR = uint16(pair)
		result = uint16(pair >> 16)
		flags.C = bit7(ar)
		flags.setZN32(pair)
	case ALU_OP_ASR:
		result = uint16(int16(ar) >> 1)
		flags.C = bit0(ar)
		flags.setZN(result)
	case ALU_OP_ASRD:
		pair := uint32(int32(uint32(ar)<<16|uint32(hr)) >> 1)
		next.HR = uint16(pair)
		result = uint16(pair >> 16)
		flags.C = bit0(hr)
		flags.setZN32(pair)
	case ALU_OP_LSR:
		result = ar >> 1
		flags.C = bit0(ar)
		flags.setZN(result)
	case ALU_OP_ROL:
		result = bits.RotateLeft16(ar, 1)
		flags.C = bit7(ar)
		flags.setZN(result)
	case ALU_OP_ROLD:
		// HR is not written back.
		result = uint16(bits.RotateLeft32(uint32(ar)<<16|uint32(hr), 1))
		flags.C = bit0(hr)
		flags.setZN(result)
	default:
		panic("unknown ALU op")
	}

	next.AR = result
}
