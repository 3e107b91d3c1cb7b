package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printScoreResult(res *domain.ScoreResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Score:\t%d/100\n", res.FinalScore)
	if res.DealBreaker {
		tw.writef("Deal breaker:\t%s\n", res.DealBreakerReason)
	}
	tw.writef("Size tier:\t%s\n", res.Fees.SizeTier)
	tw.writef("Total fees:\t$%.2f\n", res.Fees.TotalFees)
	tw.writef("Net profit/unit:\t$%.2f\n", res.Profitability.NetProfitPerUnit)
	tw.writef("ROI:\t%.1f%%\n", res.Profitability.ROIPercent)
	tw.writef("Rate table:\t%s\n", res.RateTableVersion)

	if len(res.Warnings) > 0 {
		tw.writef("\nWARNINGS\n")
		for _, w := range res.Warnings {
			tw.writef("%s\t%s\t%s\n", w.Level, w.Metric, w.Message)
		}
	}
	return tw.finish()
}

func printAnalysesTable(analyses []domain.Analysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tCATEGORY\tSCORE\tROI\tIDENTIFIER\n")
	for i := range analyses {
		a := &analyses[i]
		tw.writef("%s\t%s\t%s\t%d\t%.1f%%\t%s\n",
			a.ID,
			truncate(a.Title, 40),
			a.Category,
			a.Score,
			a.Result.Profitability.ROIPercent,
			a.Identifier,
		)
	}
	return tw.finish()
}

func printAnalysisDetail(a *domain.Analysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Title:\t%s\n", a.Title)
	tw.writef("Identifier:\t%s\n", a.Identifier)
	tw.writef("Category:\t%s\n", a.Category)
	tw.writef("Score:\t%d/100\n", a.Score)
	if a.Result.DealBreaker {
		tw.writef("Deal breaker:\t%s\n", a.Result.DealBreakerReason)
	}
	tw.writef("Total fees:\t$%.2f\n", a.Result.Fees.TotalFees)
	tw.writef("Net profit/unit:\t$%.2f\n", a.Result.Profitability.NetProfitPerUnit)
	tw.writef("ROI:\t%.1f%%\n", a.Result.Profitability.ROIPercent)
	tw.writef("Rate table:\t%s\n", a.RateTableVersion)
	if a.Notes != "" {
		tw.writef("Notes:\t%s\n", a.Notes)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Updated:\t%s\n", a.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(a.Result.Warnings) > 0 {
		tw.writef("\nWARNINGS\n")
		for _, w := range a.Result.Warnings {
			tw.writef("%s\t%s\t%s\n", w.Level, w.Metric, w.Message)
		}
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
