package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ezrec/microemu/emulator"
	"github.com/ezrec/microemu/snapshot"
)

// Environment defaults, optionally from a .env file.
const (
	ENV_VERBOSE    = "MICROEMU_VERBOSE"
	ENV_TRACE      = "MICROEMU_TRACE"
	ENV_MAX_CYCLES = "MICROEMU_MAX_CYCLES"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "microemu",
	Short: "Cycle accurate microprogrammed processor emulator.",
	Long: `microemu loads a machine state snapshot (program memory, ` +
		`control store, K1 and K2 jump tables, registers and flags), ` +
		`and runs it one microinstruction per cycle.`,
	SilenceUsage: true,
}

func init() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("microemu: .env: %v", err)
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", envBool(ENV_VERBOSE), "Verbose mode")
	rootCmd.AddCommand(runCmd, stepCmd, dumpCmd)
}

func envBool(name string) (value bool) {
	text, ok := os.LookupEnv(name)
	if !ok {
		return
	}

	value, err := strconv.ParseBool(text)
	if err != nil {
		log.Printf("microemu: %v: %v", name, err)
	}

	return
}

func envUint(name string) (value uint64) {
	text, ok := os.LookupEnv(name)
	if !ok {
		return
	}

	value, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		log.Printf("microemu: %v: %v", name, err)
	}

	return
}

// load an emulator from a snapshot file.
func load(path string) (emu *emulator.Emulator, err error) {
	img, err := snapshot.Load(path)
	if err != nil {
		return
	}

	emu = emulator.NewEmulator(img)
	emu.Verbose = verbose
	err = emu.Reset()

	return
}
