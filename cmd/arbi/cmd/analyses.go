package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/arbiscout/arbiscout/internal/api/client"
)

func analysesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "analyses",
		Short: "Manage saved analyses",
	}
	c.AddCommand(analysesSaveCmd())
	c.AddCommand(analysesListCmd())
	c.AddCommand(analysesGetCmd())
	c.AddCommand(analysesNotesCmd())
	c.AddCommand(analysesDeleteCmd())
	return c
}

func analysesSaveCmd() *cobra.Command {
	var (
		f     inputFlags
		title string
		notes string
	)

	c := &cobra.Command{
		Use:   "save",
		Short: "Score a product and save the analysis",
		Example: `  arbi analyses save --owner user-1 --identifier B00TESTSKU \
    --price 49.99 --cost 15 --title "USB-C Hub"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newClient().CreateAnalysis(context.Background(), &apiclient.AnalysisRequest{
				Identifier: f.identifier,
				Title:      title,
				Notes:      notes,
				Inputs:     *f.inputs(),
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAnalysisDetail(a)
		},
	}
	f.register(c.Flags())
	c.Flags().StringVar(&title, "title", "", "display title")
	c.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cobra.CheckErr(c.MarkFlagRequired("price"))
	return c
}

func analysesListCmd() *cobra.Command {
	var opts apiclient.ListOptions

	c := &cobra.Command{
		Use:     "list",
		Short:   "List saved analyses",
		Example: `  arbi analyses list --owner user-1 --min-score 70 --order-by score`,
		RunE: func(_ *cobra.Command, _ []string) error {
			page, err := newClient().ListAnalyses(context.Background(), opts)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if err := printAnalysesTable(page.Analyses); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d analyses shown.\n", len(page.Analyses), page.Total)
			return nil
		},
	}
	c.Flags().IntVar(&opts.MinScore, "min-score", 0, "lowest score to include")
	c.Flags().IntVar(&opts.MaxScore, "max-score", 0, "highest score to include")
	c.Flags().StringVar(&opts.Category, "category", "", "exact category filter")
	c.Flags().StringVar(&opts.Identifier, "identifier", "", "exact identifier filter")
	c.Flags().IntVar(&opts.Limit, "limit", 0, "page size")
	c.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")
	c.Flags().StringVar(&opts.OrderBy, "order-by", "", "sort column (score, created_at, updated_at)")
	return c
}

func analysesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a saved analysis",
		Example: `  arbi analyses get 4f2d11aa-... --owner user-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().GetAnalysis(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAnalysisDetail(a)
		},
	}
}

func analysesNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "notes <id> <notes>",
		Short:   "Replace the notes on a saved analysis",
		Example: `  arbi analyses notes 4f2d11aa-... "reorder in Q4" --owner user-1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().UpdateAnalysisNotes(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Notes updated.")
			return nil
		},
	}
}

func analysesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a saved analysis",
		Example: `  arbi analyses delete 4f2d11aa-... --owner user-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteAnalysis(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Analysis deleted.")
			return nil
		},
	}
}
