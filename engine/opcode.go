package engine

// AluOp is the 4-bit ALU operation field.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp,BusSource,BusDest,LoopOp,SeqOp
const (
	ALU_OP_NOP   = AluOp(0)  // nop
	ALU_OP_LOAD  = AluOp(1)  // load
	ALU_OP_NOT   = AluOp(2)  // not
	ALU_OP_CLEAR = AluOp(3)  // clr
	ALU_OP_ADD   = AluOp(4)  // add
	ALU_OP_ADDNO = AluOp(5)  // addno
	ALU_OP_AND   = AluOp(6)  // and
	ALU_OP_OR    = AluOp(7)  // or
	ALU_OP_ADDNF = AluOp(8)  // addnf
	ALU_OP_LSL   = AluOp(9)  // lsl
	ALU_OP_LSLD  = AluOp(10) // lsld
	ALU_OP_ASR   = AluOp(11) // asr
	ALU_OP_ASRD  = AluOp(12) // asrd
	ALU_OP_LSR   = AluOp(13) // lsr
	ALU_OP_ROL   = AluOp(14) // rol
	ALU_OP_ROLD  = AluOp(15) // rold
)

// BusSource is the 3-bit bus source (TB) field.
type BusSource int

const (
	TB_ONES    = BusSource(0) // ones
	TB_IR      = BusSource(1) // ir
	TB_PM      = BusSource(2) // pm
	TB_PC      = BusSource(3) // pc
	TB_AR      = BusSource(4) // ar
	TB_HR      = BusSource(5) // hr
	TB_GR      = BusSource(6) // gr
	TB_LITERAL = BusSource(7) // lit
)

// BusDest is the 3-bit bus destination (FB) field.
type BusDest int

const (
	FB_NONE     = BusDest(0) // -
	FB_IR       = BusDest(1) // ir
	FB_PM       = BusDest(2) // pm
	FB_PC       = BusDest(3) // pc
	FB_RESERVED = BusDest(4) // rsv
	FB_HR       = BusDest(5) // hr
	FB_GR       = BusDest(6) // gr
	FB_ASR      = BusDest(7) // asr
)

// LoopOp is the 2-bit loop counter control field.
type LoopOp int

const (
	LC_KEEP = LoopOp(0) // -
	LC_DEC  = LoopOp(1) // dec
	LC_BUS  = LoopOp(2) // bus
	LC_IMM  = LoopOp(3) // imm
)

// SeqOp is the 4-bit sequencer control field.
type SeqOp int

const (
	SEQ_NEXT = SeqOp(0)  // next
	SEQ_K1   = SeqOp(1)  // k1
	SEQ_K2   = SeqOp(2)  // k2
	SEQ_ZERO = SeqOp(3)  // zero
	SEQ_JNZ  = SeqOp(4)  // jnz
	SEQ_JUMP = SeqOp(5)  // jump
	SEQ_CALL = SeqOp(6)  // call
	SEQ_RET  = SeqOp(7)  // ret
	SEQ_JZ   = SeqOp(8)  // jz
	SEQ_JN   = SeqOp(9)  // jn
	SEQ_JC   = SeqOp(10) // jc
	SEQ_JO   = SeqOp(11) // jo
	SEQ_JL   = SeqOp(12) // jl
	SEQ_JNC  = SeqOp(13) // jnc
	SEQ_JNO  = SeqOp(14) // jno
	SEQ_HALT = SeqOp(15) // halt
)
