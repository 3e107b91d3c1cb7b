// Package main is the entry point for the arbi CLI.
package main

import (
	"github.com/arbiscout/arbiscout/cmd/arbi/cmd"
)

func main() {
	cmd.Execute()
}
