//go:build !linux

package console

import (
	"io"
)

// rawMode is line buffered outside of Linux. Keys take effect on enter.
func rawMode(in io.Reader) (restore func(), err error) {
	restore = func() {}
	return
}
