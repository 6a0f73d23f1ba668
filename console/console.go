// Package console is an interactive single-key stepping console for an
// emulator. The machine state is rendered between cycles.
//
// Keys:
//
//	space, enter  step one cycle
//	r             run until done
//	s             save a snapshot
//	q             quit
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/tebeka/atexit"

	"github.com/ezrec/microemu/emulator"
	"github.com/ezrec/microemu/engine"
	"github.com/ezrec/microemu/snapshot"
	"github.com/ezrec/microemu/translate"
)

// Console state.
type Console struct {
	*emulator.Emulator
	In       io.Reader // Key input. Raw mode is used if it is a terminal.
	Out      io.Writer // Rendered state.
	SavePath string    // Snapshot path for the 's' key.
}

// Render writes the engine state and the microinstruction at uPC to w.
func Render(w io.Writer, emu *emulator.Emulator) (err error) {
	regs := emu.Registers()
	mi := emu.Current()
	ins := engine.Instruction(regs.IR)

	_, err = fmt.Fprintf(w, "%v% 6s: %02X %08X %v\n% 6s: %X %X %X %02X\n",
		emu.Engine.String(),
		"uM", regs.UPC&engine.UPC_MASK, uint32(mi), mi,
		"IR", ins.Op(), ins.GRx(), ins.M(), ins.Addr())

	return
}

// Run the console until 'q', or the end of input.
func (con *Console) Run() (err error) {
	restore, err := rawMode(con.In)
	if err != nil {
		return
	}
	atexit.Register(restore)
	defer restore()

	reader := bufio.NewReader(con.In)
	for {
		err = Render(con.Out, con.Emulator)
		if err != nil {
			return
		}

		_, err = fmt.Fprint(con.Out, f("[space] step, [r]un, [s]ave, [q]uit> "))
		if err != nil {
			return
		}

		var key byte
		key, err = reader.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			fmt.Fprintln(con.Out)
			return
		}
		if err != nil {
			return
		}
		if key != '\n' {
			fmt.Fprintln(con.Out)
		}

		err = con.key(key)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// key performs the action for a key. io.EOF is returned on quit.
func (con *Console) key(key byte) (err error) {
	switch key {
	case ' ', '\n', '\r':
		var done bool
		done, err = con.Tick()
		if done && err == nil && con.Halted() {
			translate.Fprintf(con.Out, "halted\n")
		}
	case 'r':
		err = con.Emulator.Run()
	case 's':
		if con.SavePath == "" {
			log.Printf("console: %v", ErrNoSavePath)
			return
		}
		err = snapshot.Save(con.SavePath, con.Snapshot())
		if err == nil {
			translate.Fprintf(con.Out, "saved %v\n", con.SavePath)
		}
	case 'q':
		err = io.EOF
	}

	return
}
