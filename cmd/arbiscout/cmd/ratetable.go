package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbiscout/arbiscout/internal/ratetable"
)

func rateTableCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "ratetable",
		Short: "Inspect and validate rate tables",
	}
	c.AddCommand(rateTableValidateCommand())
	c.AddCommand(rateTableShowCommand())
	return c
}

func init() {
	rootCmd.AddCommand(rateTableCommand())
}

func rateTableValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file>",
		Short:   "Validate a rate table file",
		Example: `  arbiscout ratetable validate ratetable.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			table, err := ratetable.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading rate table: %w", err)
			}
			if err := ratetable.Validate(table); err != nil {
				return fmt.Errorf("rate table %s is invalid:\n%w", args[0], err)
			}
			fmt.Printf("Rate table %s (version %s) is valid.\n", args[0], table.Version)
			return nil
		},
	}
}

func rateTableShowCommand() *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the active rate table weights",
		RunE: func(_ *cobra.Command, _ []string) error {
			table, err := ratetable.Load(path)
			if err != nil {
				return fmt.Errorf("loading rate table: %w", err)
			}
			return printRateTable(table)
		},
	}
	c.Flags().StringVar(&path, "table", "", "rate table file (default: built-in table)")
	return c
}
