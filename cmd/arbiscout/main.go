// Package main is the entry point for the arbiscout server.
package main

import (
	"os"

	"github.com/arbiscout/arbiscout/cmd/arbiscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
