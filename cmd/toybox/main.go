package main

import (
	"os"

	"toybox/cmd/toybox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
