//go:build linux

package console

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawMode disables line buffering and echo if in is a terminal.
func rawMode(in io.Reader) (restore func(), err error) {
	restore = func() {}

	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return
	}

	var original unix.Termios
	err = termios.Tcgetattr(file.Fd(), &original)
	if err != nil {
		return
	}

	raw := original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(file.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return
	}

	restore = func() {
		termios.Tcsetattr(file.Fd(), termios.TCSANOW, &original)
	}

	return
}
