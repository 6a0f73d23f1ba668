package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/microemu/console"
)

var stepSave string

var stepCmd = &cobra.Command{
	Use:   "step SNAPSHOT",
	Short: "Step through a snapshot interactively.",
	Long: `Step through a snapshot one cycle at a time. The machine state ` +
		`is printed between cycles.

Keys: space or enter to step, 'r' to run until halted, 's' to save ` +
		`the state to --save, 'q' to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		emu, err := load(args[0])
		if err != nil {
			return
		}

		emu.MaxCycles = envUint(ENV_MAX_CYCLES)

		con := &console.Console{
			Emulator: emu,
			In:       os.Stdin,
			Out:      os.Stdout,
			SavePath: stepSave,
		}

		err = con.Run()
		return
	},
}

func init() {
	stepCmd.Flags().StringVarP(&stepSave, "save", "s", "", "Snapshot path for the 's' key")
}
