package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/arbiscout/arbiscout/internal/ratetable"
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
	tw.writef("Rate table:\t%s\n", res.RateTableVersion)
	tw.writef("\n")
	tw.writef("Size tier:\t%s\n", res.Fees.SizeTier)
	tw.writef("Referral fee:\t$%.2f\n", res.Fees.ReferralFee)
	tw.writef("Fulfillment fee:\t$%.2f\n", res.Fees.FulfillmentFee)
	if res.Fees.InboundPlacementFee > 0 {
		tw.writef("Placement fee:\t$%.2f\n", res.Fees.InboundPlacementFee)
	}
	tw.writef("Total fees:\t$%.2f\n", res.Fees.TotalFees)
	tw.writef("\n")
	tw.writef("Net profit/unit:\t$%.2f\n", res.Profitability.NetProfitPerUnit)
	tw.writef("ROI:\t%.1f%%\n", res.Profitability.ROIPercent)
	tw.writef("Storage/month:\t$%.2f\n", res.Profitability.MonthlyStorageCost)

	if len(res.Warnings) > 0 {
		tw.writef("\nWARNINGS\n")
		for _, w := range res.Warnings {
			tw.writef("%s\t%s\t%s\n", w.Level, w.Metric, w.Message)
		}
	}
	return tw.finish()
}

func printRateTable(table *ratetable.Table) error {
	w := table.Weights
	tw := newTabWriter(os.Stdout)
	tw.writef("Version:\t%s\n", table.Version)
	tw.writef("\nFACTOR\tWEIGHT\n")
	tw.writef("roi\t%.2f\n", w.ROI)
	tw.writef("rank\t%.2f\n", w.Rank)
	tw.writef("competition\t%.2f\n", w.Competition)
	tw.writef("amazon_presence\t%.2f\n", w.AmazonPresence)
	tw.writef("weight\t%.2f\n", w.Weight)
	tw.writef("size_tier\t%.2f\n", w.SizeTier)
	tw.writef("trend\t%.2f\n", w.Trend)
	tw.writef("variations\t%.2f\n", w.Variations)
	tw.writef("seasonality\t%.2f\n", w.Seasonality)
	tw.writef("delicacy\t%.2f\n", w.Delicacy)
	tw.writef("velocity\t%.2f\n", w.Velocity)
	tw.writef("days_to_sell\t%.2f\n", w.DaysToSell)
	tw.writef("total\t%.2f\n", w.Total())
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
