// Package main is the entry point for the jimaku CLI.
package main

import (
	"os"

	"jimaku/cmd/jimaku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
