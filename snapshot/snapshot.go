// Package snapshot reads and writes the line oriented machine state format.
//
// A snapshot holds one value per line, in order:
//
//	256 program memory words     hex
//	128 microinstructions        hex
//	 16 K1 entries               hex
//	  4 K2 entries               hex
//	 12 registers                hex, PC ASR AR HR GR0 GR1 GR2 GR3 IR uPC uSP LC
//	  1 flags                    binary, ZNOCL
//
// Text after ';' is a comment. Blank lines are ignored. Hex values may
// carry a 0x prefix, binary values a 0b prefix.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/microemu/engine"
)

// field is one line of the snapshot.
type field struct {
	name    string
	section string // Comment emitted before the field, if any.
	label   bool   // Name the field in a trailing comment.
	base    int
	digits  int
	max     uint64
	get     func() uint64
	set     func(value uint64)
}

// fields lists the snapshot lines, bound to an image.
func fields(img *engine.Image) (list []field) {
	for n := range img.Program {
		fd := field{name: fmt.Sprintf("PM[%02x]", n), base: 16, digits: 4, max: 0xffff,
			get: func() uint64 { return uint64(img.Program[n]) },
			set: func(value uint64) { img.Program[n] = uint16(value) },
		}
		if n == 0 {
			fd.section = "program memory"
		}
		list = append(list, fd)
	}

	for n := range img.Micro {
		fd := field{name: fmt.Sprintf("uM[%02x]", n), base: 16, digits: 8, max: 0xffff_ffff,
			get: func() uint64 { return uint64(img.Micro[n]) },
			set: func(value uint64) { img.Micro[n] = engine.Micro(value) },
		}
		if n == 0 {
			fd.section = "control store"
		}
		list = append(list, fd)
	}

	for n := range img.K1 {
		fd := field{name: fmt.Sprintf("K1[%x]", n), base: 16, digits: 2, max: engine.UPC_MASK,
			get: func() uint64 { return uint64(img.K1[n]) },
			set: func(value uint64) { img.K1[n] = uint8(value) },
		}
		if n == 0 {
			fd.section = "K1"
		}
		list = append(list, fd)
	}

	for n := range img.K2 {
		fd := field{name: fmt.Sprintf("K2[%x]", n), base: 16, digits: 2, max: engine.UPC_MASK,
			get: func() uint64 { return uint64(img.K2[n]) },
			set: func(value uint64) { img.K2[n] = uint8(value) },
		}
		if n == 0 {
			fd.section = "K2"
		}
		list = append(list, fd)
	}

	regs := &img.Registers
	for n, name := range engine.RegisterNames {
		width := regs.Width(name)
		fd := field{name: name, label: true, base: 16, digits: width / 4, max: (1 << width) - 1,
			get: func() uint64 {
				value, _ := regs.Get(name)
				return uint64(value)
			},
			set: func(value uint64) { regs.Set(name, int(value)) },
		}
		if name == "uPC" {
			fd.max = engine.UPC_MASK
		}
		if n == 0 {
			fd.section = "registers"
		}
		list = append(list, fd)
	}

	flags := &img.Flags
	list = append(list, field{name: "ZNOCL", section: "flags", label: true, base: 2, digits: 5, max: 0x1f,
		get: func() (value uint64) {
			for _, set := range flags.All() {
				value <<= 1
				if set {
					value |= 1
				}
			}
			return
		},
		set: func(value uint64) {
			flags.Z = value&0x10 != 0
			flags.N = value&0x08 != 0
			flags.O = value&0x04 != 0
			flags.C = value&0x02 != 0
			flags.L = value&0x01 != 0
		},
	})

	return
}

// parseValue parses a hex or binary number, with an optional prefix.
func parseValue(text string, base int) (value uint64, err error) {
	lower := strings.ToLower(text)
	switch base {
	case 16:
		lower = strings.TrimPrefix(lower, "0x")
	case 2:
		lower = strings.TrimPrefix(lower, "0b")
	}

	value, err = strconv.ParseUint(lower, base, 64)
	if err != nil {
		var num *strconv.NumError
		if errors.As(err, &num) && errors.Is(num.Err, strconv.ErrRange) {
			err = ErrRange
		} else {
			err = ErrNumber
		}
	}

	return
}

// Parse reads a snapshot into a new image.
func Parse(input io.Reader) (img *engine.Image, err error) {
	parsed := &engine.Image{}
	list := fields(parsed)

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var index int

	fail := func(name string, cause error) error {
		return &ErrSyntax{LineNo: lineno, Line: line, Field: name, Err: fmt.Errorf("%w: %w", ErrBadFormat, cause)}
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, _, _ := strings.Cut(line, ";")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if index >= len(list) {
			err = fail("", ErrTrailing)
			return
		}

		fd := list[index]

		var value uint64
		value, err = parseValue(text, fd.base)
		if err != nil {
			err = fail(fd.name, err)
			return
		}
		if value > fd.max {
			err = fail(fd.name, ErrRange)
			return
		}

		fd.set(value)
		index++
	}

	err = scanner.Err()
	if err != nil {
		err = fail("", errors.Join(ErrTruncated, err))
		return
	}

	if index < len(list) {
		line = ""
		err = fail(list[index].name, ErrTruncated)
		return
	}

	img = parsed
	return
}

// Write writes an image as a snapshot.
func Write(output io.Writer, img *engine.Image) (err error) {
	wr := bufio.NewWriter(output)

	for _, fd := range fields(img) {
		if len(fd.section) != 0 {
			fmt.Fprintf(wr, "; %v\n", fd.section)
		}

		value := fd.get()
		switch fd.base {
		case 2:
			fmt.Fprintf(wr, "%0*b", fd.digits, value)
		default:
			fmt.Fprintf(wr, "%0*X", fd.digits, value)
		}

		if fd.label {
			fmt.Fprintf(wr, " ; %v", fd.name)
		}
		fmt.Fprintln(wr)
	}

	return wr.Flush()
}

// Load reads a snapshot file.
func Load(path string) (img *engine.Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err = Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// Save writes a snapshot file.
func Save(path string, img *engine.Image) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = Write(ouf, img)
	if err != nil {
		ouf.Close()
		return
	}

	return ouf.Close()
}
