package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/microemu/console"
	"github.com/ezrec/microemu/emulator"
	"github.com/ezrec/microemu/snapshot"
	"github.com/ezrec/microemu/trace"
)

var runOpts struct {
	until     string
	maxCycles uint64
	trace     string
	save      string
}

var runCmd = &cobra.Command{
	Use:   "run SNAPSHOT",
	Short: "Run a snapshot until it halts.",
	Long: `Run a snapshot until it halts, the --until condition holds, or ` +
		`--max-cycles is reached. The final state is printed.

The --until condition is a Starlark expression over the registers ` +
		`(PC, ASR, AR, HR, GR0..GR3, IR, uPC, uSP, LC), the flags ` +
		`(Z, N, O, C, L), 'cycles', 'halted' and pm(addr).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		emu, err := load(args[0])
		if err != nil {
			return
		}

		emu.MaxCycles = runOpts.maxCycles

		if runOpts.until != "" {
			emu.Until, err = emulator.NewCondition(runOpts.until)
			if err != nil {
				return
			}
		}

		if runOpts.trace != "" {
			path := runOpts.trace
			if path == "-" {
				path = ""
			}
			rec := trace.NewRecorder(path)
			rec.Verbose = verbose
			err = rec.Init()
			if err != nil {
				return
			}
			defer func() {
				close_err := rec.Close()
				if err == nil {
					err = close_err
				}
			}()
			log.Printf("microemu: trace: %v", rec.Path())
			emu.Recorder = rec
		}

		run_err := emu.Run()

		err = console.Render(os.Stdout, emu)
		if err != nil {
			return
		}

		if runOpts.save != "" {
			err = snapshot.Save(runOpts.save, emu.Snapshot())
			if err != nil {
				return
			}
		}

		err = run_err
		return
	},
}

func init() {
	flags := runCmd.Flags()
	flags.StringVarP(&runOpts.until, "until", "u", "", "Stop once this condition holds")
	flags.Uint64VarP(&runOpts.maxCycles, "max-cycles", "m", envUint(ENV_MAX_CYCLES), "Cycle limit, 0 for none")
	flags.StringVarP(&runOpts.trace, "trace", "t", os.Getenv(ENV_TRACE), "SQLite trace database, '-' for a generated name")
	flags.StringVarP(&runOpts.save, "save", "s", "", "Save the final state to this snapshot")
}
