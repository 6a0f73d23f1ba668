package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestEngine loads code into the control store starting at address 0.
func newTestEngine(regs Registers, flags Flags, code ...Micro) *Engine {
	img := &Image{Registers: regs, Flags: flags}
	copy(img.Micro[:], code)
	return NewEngine(img)
}

func TestEngine(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(nil)
	assert.Equal(Registers{}, e.Registers())
	assert.Equal(Flags{}, e.Flags())
	assert.Equal(uint64(0), e.Cycles())
	assert.False(e.Halted())

	// All-zero control store: nop, next.
	e.Step()
	assert.Equal(uint8(1), e.Registers().UPC)
	assert.Equal(uint64(1), e.Cycles())
	assert.True(e.Flags().L)
}

func TestEngineLiteral(t *testing.T) {
	assert := assert.New(t)

	mi := MakeMicroLiteral(ALU_OP_LOAD, 0x1234)
	assert.Equal(Micro(0x003c_1234), mi)

	e := newTestEngine(Registers{}, Flags{}, mi)
	e.Step()

	assert.Equal(uint16(0x1234), e.Registers().AR)
	assert.Equal(uint8(0), e.Registers().UPC)
	assert.Equal(uint64(1), e.Cycles())
}

func TestEngineLiteralBypass(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{
		PC: 0x10, ASR: 0x20, AR: 0x0001, HR: 0x0002,
		GR: [4]uint16{0x100, 0x101, 0x102, 0x103},
		IR: 0xabcd, UPC: 0x05, USP: 0x44, LC: 0x07,
	}

	// 0xffff decodes to FB_ASR, P, LC_IMM, SEQ_HALT outside literal mode.
	img := &Image{Registers: regs}
	img.Micro[5] = MakeMicroLiteral(ALU_OP_ADD, 0xffff)
	e := NewEngine(img)
	e.Step()

	after := e.Registers()
	assert.False(e.Halted())
	assert.Equal(uint16(0x0000), after.AR)

	expected := regs
	expected.AR = after.AR
	assert.Equal(expected, after)
	assert.Equal(Flags{Z: true, C: true}, e.Flags())
	assert.Equal(img.Program, *e.Memory())
}

func TestEngineLoopCounter(t *testing.T) {
	assert := assert.New(t)

	dec := MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_DEC, SEQ_NEXT, 0)
	e := newTestEngine(Registers{LC: 1}, Flags{}, dec, dec)

	e.Step()
	assert.Equal(uint8(0), e.Registers().LC)
	assert.True(e.Flags().L)

	e.Step()
	assert.Equal(uint8(255), e.Registers().LC)
	assert.False(e.Flags().L)
}

func TestEngineLoopLoad(t *testing.T) {
	assert := assert.New(t)

	e := newTestEngine(Registers{AR: 0x1234, LC: 9}, Flags{L: true},
		MakeMicro(ALU_OP_NOP, TB_AR, FB_NONE, false, false, LC_BUS, SEQ_NEXT, 0),
		MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_IMM, SEQ_NEXT, 0x25),
		MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_NEXT, 0),
	)

	e.Step()
	assert.Equal(uint8(0x34), e.Registers().LC)
	assert.False(e.Flags().L)

	e.Step()
	assert.Equal(uint8(0x25), e.Registers().LC)
	assert.False(e.Flags().L)

	e.Step()
	assert.Equal(uint8(0x25), e.Registers().LC)
	assert.False(e.Flags().L)
}

func TestEngineBusSource(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{
		PC: 0x81, ASR: 0x10, AR: 0x1111, HR: 0x2222,
		GR: [4]uint16{0x3000, 0x3001, 0x3002, 0x3003},
		IR: uint16(MakeInstruction(0x0, 1, 2, 0x00)),
	}

	table := [](struct {
		name   string
		source BusSource
		sel    bool
		bus    uint16
	}){
		{"ones", TB_ONES, false, 0xffff},
		{"ir", TB_IR, false, regs.IR},
		{"pm", TB_PM, false, 0xbeef},
		{"pc", TB_PC, false, 0x0081},
		{"ar", TB_AR, false, 0x1111},
		{"hr", TB_HR, false, 0x2222},
		{"gr_grx", TB_GR, false, 0x3001},
		{"gr_m", TB_GR, true, 0x3002},
	}

	for _, entry := range table {
		img := &Image{Registers: regs}
		img.Program[0x10] = 0xbeef
		img.Micro[0] = MakeMicro(ALU_OP_LOAD, entry.source, FB_NONE, entry.sel, false, LC_KEEP, SEQ_NEXT, 0)
		e := NewEngine(img)
		e.Step()
		assert.Equal(entry.bus, e.Registers().AR, entry.name)
	}
}

func TestEngineWriteBack(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{
		PC: 0x40, ASR: 0x10, AR: 0x1234, HR: 0x2222,
		GR: [4]uint16{0x3000, 0x3001, 0x3002, 0x3003},
		IR: uint16(MakeInstruction(0x0, 3, 0, 0x00)),
	}

	table := [](struct {
		name   string
		dest   BusDest
		update func(regs *Registers, pm *[PM_SIZE]uint16)
	}){
		{"none", FB_NONE, func(regs *Registers, pm *[PM_SIZE]uint16) {}},
		{"ir", FB_IR, func(regs *Registers, pm *[PM_SIZE]uint16) { regs.IR = 0x1234 }},
		{"pm", FB_PM, func(regs *Registers, pm *[PM_SIZE]uint16) { pm[0x10] = 0x1234 }},
		{"pc", FB_PC, func(regs *Registers, pm *[PM_SIZE]uint16) { regs.PC = 0x34 }},
		{"reserved", FB_RESERVED, func(regs *Registers, pm *[PM_SIZE]uint16) {}},
		{"hr", FB_HR, func(regs *Registers, pm *[PM_SIZE]uint16) { regs.HR = 0x1234 }},
		{"gr", FB_GR, func(regs *Registers, pm *[PM_SIZE]uint16) { regs.GR[3] = 0x1234 }},
		{"asr", FB_ASR, func(regs *Registers, pm *[PM_SIZE]uint16) { regs.ASR = 0x34 }},
	}

	for _, entry := range table {
		img := &Image{Registers: regs}
		img.Micro[0] = MakeMicro(ALU_OP_NOP, TB_AR, entry.dest, false, false, LC_KEEP, SEQ_NEXT, 0)
		e := NewEngine(img)
		e.Step()

		expected := regs
		expected.UPC = 1
		var pm [PM_SIZE]uint16
		entry.update(&expected, &pm)

		assert.Equal(expected, e.Registers(), entry.name)
		assert.Equal(pm, *e.Memory(), entry.name)
	}
}

func TestEngineIncrement(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		pc   uint8
		dest BusDest
		inc  bool
		out  uint8
	}){
		{"write", 0x10, FB_PC, false, 0x80},
		{"increment", 0x10, FB_NONE, true, 0x11},
		{"increment_wins", 0x10, FB_PC, true, 0x11},
		{"increment_wrap", 0xff, FB_NONE, true, 0x00},
	}

	for _, entry := range table {
		e := newTestEngine(Registers{PC: entry.pc, AR: 0x0080}, Flags{},
			MakeMicro(ALU_OP_NOP, TB_AR, entry.dest, false, entry.inc, LC_KEEP, SEQ_NEXT, 0))
		e.Step()
		assert.Equal(entry.out, e.Registers().PC, entry.name)
	}
}

func TestEngineIncrementAndHalt(t *testing.T) {
	assert := assert.New(t)

	e := newTestEngine(Registers{}, Flags{}, Micro(0x2780))
	e.Step()

	assert.Equal(uint8(1), e.Registers().PC)
	assert.True(e.Halted())
}

func TestEngineHalt(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Registers: Registers{UPC: 5, AR: 0x10}}
	img.Micro[5] = MakeMicro(ALU_OP_ADDNF, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_HALT, 0)
	img.Micro[0] = MakeMicro(ALU_OP_CLEAR, TB_ONES, FB_HR, false, true, LC_DEC, SEQ_NEXT, 0)
	e := NewEngine(img)

	e.Step()
	assert.True(e.Halted())
	assert.Equal(uint8(0), e.Registers().UPC)
	assert.Equal(uint16(0x000f), e.Registers().AR)
	assert.Equal(uint64(1), e.Cycles())

	before := e.Snapshot()
	e.Step()
	e.Step()
	assert.Equal(before, e.Snapshot())
	assert.Equal(uint64(1), e.Cycles())
	assert.True(e.Halted())

	e.Reset(img)
	assert.False(e.Halted())
	assert.Equal(uint64(0), e.Cycles())
	assert.Equal(uint8(5), e.Registers().UPC)
}

func TestEngineCallReturn(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Registers: Registers{UPC: 3}}
	img.Micro[3] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_CALL, 0x20)
	img.Micro[0x20] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_RET, 0)
	e := NewEngine(img)

	e.Step()
	assert.Equal(uint8(0x20), e.Registers().UPC)
	assert.Equal(uint8(3), e.Registers().USP)

	e.Step()
	assert.Equal(uint8(3), e.Registers().UPC)
}

func TestEngineCallNested(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Registers: Registers{UPC: 3}}
	img.Micro[3] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_CALL, 0x20)
	img.Micro[0x20] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_CALL, 0x30)
	img.Micro[0x30] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_RET, 0)
	e := NewEngine(img)

	e.Step()
	e.Step()
	assert.Equal(uint8(0x30), e.Registers().UPC)
	assert.Equal(uint8(0x20), e.Registers().USP)

	// The first return address is gone.
	e.Step()
	assert.Equal(uint8(0x20), e.Registers().UPC)
	assert.Equal(uint8(0x20), e.Registers().USP)
}

func TestEngineRegisterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for grx := range uint8(4) {
		ir := uint16(MakeInstruction(0x3, grx, 0, 0x00))
		e := newTestEngine(Registers{AR: 0xbeef, IR: ir}, Flags{},
			MakeMicro(ALU_OP_CLEAR, TB_AR, FB_GR, false, false, LC_KEEP, SEQ_NEXT, 0),
			MakeMicro(ALU_OP_LOAD, TB_GR, FB_NONE, false, false, LC_KEEP, SEQ_NEXT, 0),
		)

		e.Step()
		assert.Equal(uint16(0), e.Registers().AR)
		assert.Equal(uint16(0xbeef), e.Registers().GR[grx])

		e.Step()
		assert.Equal(uint16(0xbeef), e.Registers().AR)
	}
}

func TestEngineAluHrPrecedence(t *testing.T) {
	assert := assert.New(t)

	e := newTestEngine(Registers{AR: 0x4000, HR: 0x0001}, Flags{},
		MakeMicro(ALU_OP_LSLD, TB_AR, FB_HR, false, false, LC_KEEP, SEQ_NEXT, 0),
		MakeMicro(ALU_OP_NOP, TB_AR, FB_HR, false, false, LC_KEEP, SEQ_NEXT, 0),
	)

	// The double width shift reads HR from before the write-back, and wins.
	e.Step()
	assert.Equal(uint16(0x8000), e.Registers().AR)
	assert.Equal(uint16(0x0002), e.Registers().HR)

	e.Step()
	assert.Equal(uint16(0x8000), e.Registers().HR)
}

func TestEngineProgramWrite(t *testing.T) {
	assert := assert.New(t)

	e := newTestEngine(Registers{ASR: 0x20, AR: 0x5555}, Flags{},
		MakeMicro(ALU_OP_NOP, TB_AR, FB_PM, false, false, LC_KEEP, SEQ_NEXT, 0),
		MakeMicro(ALU_OP_LOAD, TB_PM, FB_NONE, false, false, LC_KEEP, SEQ_NEXT, 0),
	)
	e.Memory()[0x21] = 0x7777

	e.Step()
	assert.Equal(uint16(0x5555), e.Memory()[0x20])
	assert.Equal(uint16(0x7777), e.Memory()[0x21])

	e.Memory()[0x20] = 0x6666
	e.Step()
	assert.Equal(uint16(0x6666), e.Registers().AR)
}

func TestEngineFetchDispatch(t *testing.T) {
	assert := assert.New(t)

	// A classic fetch: ASR <- PC, IR <- PM[ASR] with PC++, dispatch on K1.
	img := &Image{}
	img.Program[0] = uint16(MakeInstruction(0x5, 1, 2, 0x33))
	img.K1[0x5] = 0x40
	img.K2[0x2] = 0x50
	img.Micro[0] = MakeMicro(ALU_OP_NOP, TB_PC, FB_ASR, false, false, LC_KEEP, SEQ_NEXT, 0)
	img.Micro[1] = MakeMicro(ALU_OP_NOP, TB_PM, FB_IR, false, true, LC_KEEP, SEQ_NEXT, 0)
	img.Micro[2] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_K2, 0)
	img.Micro[0x50] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_K1, 0)
	img.Micro[0x40] = MakeMicro(ALU_OP_NOP, TB_ONES, FB_NONE, false, false, LC_KEEP, SEQ_ZERO, 0)
	e := NewEngine(img)

	e.Step()
	e.Step()
	assert.Equal(img.Program[0], e.Registers().IR)
	assert.Equal(uint8(1), e.Registers().PC)

	e.Step()
	assert.Equal(uint8(0x50), e.Registers().UPC)
	e.Step()
	assert.Equal(uint8(0x40), e.Registers().UPC)
	e.Step()
	assert.Equal(uint8(0), e.Registers().UPC)
	assert.Equal(uint64(5), e.Cycles())
}

func TestEngineString(t *testing.T) {
	assert := assert.New(t)

	e := newTestEngine(Registers{PC: 0x12, AR: 0xabcd}, Flags{Z: true, L: true})
	text := e.String()
	assert.Contains(text, "    PC: 12\n")
	assert.Contains(text, "    AR: ABCD\n")
	assert.Contains(text, " ZNOCL: 10001\n")
	assert.Contains(text, "halted: false\n")
}
