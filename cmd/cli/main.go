// Package main is the entry point for the greenwatt CLI.
package main

import (
	"os"

	"greenwatt/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
