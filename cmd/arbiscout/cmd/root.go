// Package cmd implements the CLI commands for the arbiscout server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "arbiscout",
	Short: "Score marketplace sourcing candidates",
	Long: "An API-first service that estimates marketplace fees for sourcing\n" +
		"candidates, computes per-unit profitability, and folds a dozen demand\n" +
		"and risk signals into a single 1-100 opportunity score.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
