package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/microemu/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump SNAPSHOT",
	Short: "Check a snapshot, and print it in canonical form.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		img, err := snapshot.Load(args[0])
		if err != nil {
			return
		}

		err = snapshot.Write(os.Stdout, img)
		return
	},
}
