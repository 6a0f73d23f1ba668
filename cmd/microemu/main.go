// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command microemu runs machine state snapshots on the microprogrammed
// engine.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
