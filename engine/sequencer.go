package engine

// sequence computes the next uPC (and uSP for SEQ_CALL) into next.
// uPC wraps at the control store size.
// Conditions test the flags as they were at the start of the cycle.
func sequence(mi Micro, ins Instruction, k1 *[K1_SIZE]uint8, k2 *[K2_SIZE]uint8, prev *Registers, flags Flags, next *Registers) (halt bool) {
	jumpIf := func(cond bool) uint8 {
		if cond {
			return mi.Addr()
		}
		return prev.UPC + 1
	}

	switch mi.Seq() {
	case SEQ_NEXT:
		next.UPC = prev.UPC + 1
	case SEQ_K1:
		next.UPC = k1[ins.Op()]
	case SEQ_K2:
		next.UPC = k2[ins.M()]
	case SEQ_ZERO:
		next.UPC = 0
	case SEQ_JNZ:
		next.UPC = jumpIf(!flags.Z)
	case SEQ_JUMP:
		next.UPC = mi.Addr()
	case SEQ_CALL:
		next.USP = prev.UPC
		next.UPC = mi.Addr()
	case SEQ_RET:
		next.UPC = prev.USP
	case SEQ_JZ:
		next.UPC = jumpIf(flags.Z)
	case SEQ_JN:
		next.UPC = jumpIf(flags.N)
	case SEQ_JC:
		next.UPC = jumpIf(flags.C)
	case SEQ_JO:
		next.UPC = jumpIf(flags.O)
	case SEQ_JL:
		next.UPC = jumpIf(flags.L)
	case SEQ_JNC:
		next.UPC = jumpIf(!flags.C)
	case SEQ_JNO:
		next.UPC = jumpIf(!flags.O)
	case SEQ_HALT:
		next.UPC = 0
		halt = true
	default:
		panic("unknown sequencer op")
	}

	next.UPC &= UPC_MASK

	return
}
