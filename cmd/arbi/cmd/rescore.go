package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func rescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rescore",
		Short:   "Re-score all saved analyses",
		Long:    "Re-evaluates every saved analysis against the server's current rate table.",
		Example: `  arbi rescore`,
		RunE: func(_ *cobra.Command, _ []string) error {
			summary, err := newClient().Rescore(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Rescored %d of %d analyses (%d failed) against table %s.\n",
				summary.Updated, summary.Scanned, summary.Failed, summary.RateTableVersion)
			return nil
		},
	}
}

func rateTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ratetable",
		Short:   "Show the server's active rate table version",
		Example: `  arbi ratetable`,
		RunE: func(_ *cobra.Command, _ []string) error {
			version, err := newClient().RateTableVersion(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(version)
			return nil
		},
	}
}
