// Package main is the entry point for the MathHook CLI.
package main

import (
	"os"

	"github.com/mathhook/mathhook/internal/mathhook/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
