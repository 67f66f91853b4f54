package main

import (
	"os"

	"github.com/katalvlaran/hornlab/cmd/horncalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
