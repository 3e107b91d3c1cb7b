// Package ratetable loads and validates the versioned scoring rate table:
// size-tier brackets, the fee schedule, storage rates, normalization
// curves, warning thresholds, and factor weights. A table is loaded once
// at startup and treated as immutable; swapping tables means restarting
// with a new file.
package ratetable

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arbiscout/arbiscout/pkg/fees"
	score "github.com/arbiscout/arbiscout/pkg/scorer"
)

// BuiltinVersion names the compiled-in default table.
const BuiltinVersion = "builtin-2026.08"

// Table is one versioned rate table. Every evaluation records the version
// it was scored with, so persisted results stay attributable after the
// table changes.
type Table struct {
	Version string `yaml:"version"`

	score.Config `yaml:",inline"`
}

// Default returns the compiled-in table.
func Default() *Table {
	return &Table{
		Version: BuiltinVersion,
		Config:  score.DefaultConfig(),
	}
}

// Load reads a rate table from a YAML file, with environment variable
// substitution. Sections omitted from the file keep their built-in
// defaults. An empty path returns the built-in table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // table path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading rate table: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	t := Default()
	t.Version = ""
	if err := yaml.Unmarshal([]byte(expanded), t); err != nil {
		return nil, fmt.Errorf("parsing rate table YAML: %w", err)
	}

	if err := Validate(t); err != nil {
		return nil, fmt.Errorf("validating rate table %q: %w", path, err)
	}

	return t, nil
}

// Validate checks the structural invariants a table must satisfy before
// any evaluation may use it.
func Validate(t *Table) error {
	var errs []error

	if t.Version == "" {
		errs = append(errs, fmt.Errorf("version is required"))
	}

	if t.SizeTier.DimensionalDivisor <= 0 {
		errs = append(errs, fmt.Errorf("size_tier.dimensional_divisor must be positive"))
	}
	if len(t.SizeTier.Brackets) == 0 {
		errs = append(errs, fmt.Errorf("size_tier.brackets must not be empty"))
	}
	if len(t.SizeTier.OversizeBands) == 0 {
		errs = append(errs, fmt.Errorf("size_tier.oversize_bands must not be empty"))
	}

	if t.Fees.Referral.DefaultRate <= 0 || t.Fees.Referral.DefaultRate >= 1 {
		errs = append(errs, fmt.Errorf("fees.referral.default_rate must be a fraction in (0,1)"))
	}
	for category, rate := range t.Fees.Referral.Rates {
		if rate <= 0 || rate >= 1 {
			errs = append(errs, fmt.Errorf("fees.referral.rates[%s] must be a fraction in (0,1)", category))
		}
	}
	if t.Fees.Referral.FloorFee < 0 {
		errs = append(errs, fmt.Errorf("fees.referral.floor_fee must not be negative"))
	}
	if t.Fees.LowPriceCutoff < 0 {
		errs = append(errs, fmt.Errorf("fees.low_price_cutoff must not be negative"))
	}
	if len(t.Fees.Fulfillment) == 0 {
		errs = append(errs, fmt.Errorf("fees.fulfillment must not be empty"))
	}
	for program, tiers := range t.Fees.Fulfillment {
		for tier, table := range tiers {
			if err := validateFulfillment(table); err != nil {
				errs = append(errs, fmt.Errorf("fees.fulfillment[%s][%s]: %w", program, tier, err))
			}
		}
	}

	if t.Storage.StandardPerCuFt <= 0 || t.Storage.OversizePerCuFt <= 0 {
		errs = append(errs, fmt.Errorf("storage rates must be positive"))
	}

	if total := t.Weights.Total(); total <= 0 {
		errs = append(errs, fmt.Errorf("weights must sum to a positive total, got %.4f", total))
	}

	if t.Thresholds.HardWeightCeilingLb <= t.Thresholds.WeightWarnAboveLb {
		errs = append(errs, fmt.Errorf("thresholds.hard_weight_ceiling_lb must exceed thresholds.weight_warn_above_lb"))
	}
	if t.Thresholds.ROICriticalBelowPercent > t.Thresholds.ROIWarnBelowPercent {
		errs = append(errs, fmt.Errorf("thresholds.roi_critical_below_percent must not exceed thresholds.roi_warn_below_percent"))
	}
	if t.Thresholds.RankCriticalAbove < t.Thresholds.RankWarnAbove {
		errs = append(errs, fmt.Errorf("thresholds.rank_critical_above must be at least thresholds.rank_warn_above"))
	}

	if t.Normalize.ROI.TargetPercent <= t.Normalize.ROI.MinPercent {
		errs = append(errs, fmt.Errorf("normalize.roi.target_percent must exceed normalize.roi.min_percent"))
	}
	for name, bands := range map[string][]score.Band{
		"rank_bands":         t.Normalize.RankBands,
		"competitor_bands":   t.Normalize.CompetitorBands,
		"weight_bands":       t.Normalize.WeightBands,
		"variation_bands":    t.Normalize.VariationBands,
		"velocity_bands":     t.Normalize.VelocityBands,
		"days_to_sell_bands": t.Normalize.DaysToSellBands,
	} {
		if err := validateAscending(bands); err != nil {
			errs = append(errs, fmt.Errorf("normalize.%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func validateFulfillment(table fees.FulfillmentTable) error {
	if len(table.Bands) == 0 {
		return fmt.Errorf("at least one weight band is required")
	}
	for i, band := range table.Bands {
		if band.Fee < 0 {
			return fmt.Errorf("band %d fee must not be negative", i)
		}
		if i > 0 && band.MaxWeightLb <= table.Bands[i-1].MaxWeightLb {
			return fmt.Errorf("band weight limits must be strictly ascending")
		}
	}
	if table.OverflowBase < 0 || table.OverflowPerLb < 0 {
		return fmt.Errorf("overflow charges must not be negative")
	}
	return nil
}

func validateAscending(bands []score.Band) error {
	for i := 1; i < len(bands); i++ {
		if bands[i].Max <= bands[i-1].Max {
			return fmt.Errorf("band limits must be strictly ascending")
		}
	}
	return nil
}
