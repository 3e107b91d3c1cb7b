// Package score turns raw product signals into a 1-100 opportunity score.
// Everything in this package is pure: no I/O, no clock reads, no shared
// state. The same inputs, config, and evaluation time always produce the
// same result.
package score

import (
	"math"
	"time"

	"github.com/arbiscout/arbiscout/pkg/fees"
	"github.com/arbiscout/arbiscout/pkg/profit"
	"github.com/arbiscout/arbiscout/pkg/sizetier"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Weights controls the relative influence of each normalized factor.
// They need not sum to any particular value; aggregation divides by the
// total.
type Weights struct {
	ROI            float64 `yaml:"roi"`
	Rank           float64 `yaml:"rank"`
	Competition    float64 `yaml:"competition"`
	AmazonPresence float64 `yaml:"amazon_presence"`
	Weight         float64 `yaml:"weight"`
	SizeTier       float64 `yaml:"size_tier"`
	Trend          float64 `yaml:"trend"`
	Variations     float64 `yaml:"variations"`
	Seasonality    float64 `yaml:"seasonality"`
	Delicacy       float64 `yaml:"delicacy"`
	Velocity       float64 `yaml:"velocity"`
	DaysToSell     float64 `yaml:"days_to_sell"`
}

// DefaultWeights returns the default factor weights. ROI and rank
// dominate; the long tail of risk factors shares the rest.
func DefaultWeights() Weights {
	return Weights{
		ROI:            0.25,
		Rank:           0.20,
		Competition:    0.12,
		AmazonPresence: 0.08,
		Weight:         0.06,
		SizeTier:       0.05,
		Trend:          0.06,
		Variations:     0.04,
		Seasonality:    0.03,
		Delicacy:       0.03,
		Velocity:       0.05,
		DaysToSell:     0.03,
	}
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.ROI + w.Rank + w.Competition + w.AmazonPresence +
		w.Weight + w.SizeTier + w.Trend + w.Variations +
		w.Seasonality + w.Delicacy + w.Velocity + w.DaysToSell
}

// Config is the complete tunable surface of one evaluation: size-tier
// brackets, the fee schedule, storage rates, normalization curves,
// warning thresholds, and factor weights.
type Config struct {
	SizeTier   sizetier.Config     `yaml:"size_tier"`
	Fees       fees.Schedule       `yaml:"fees"`
	Storage    profit.StorageRates `yaml:"storage"`
	Normalize  NormalizeConfig     `yaml:"normalize"`
	Thresholds Thresholds          `yaml:"thresholds"`
	Weights    Weights             `yaml:"weights"`
}

// DefaultConfig returns the built-in configuration used when no rate
// table override is loaded.
func DefaultConfig() Config {
	return Config{
		SizeTier:   sizetier.DefaultConfig(),
		Fees:       *fees.DefaultSchedule(),
		Storage:    profit.DefaultStorageRates(),
		Normalize:  DefaultNormalizeConfig(),
		Thresholds: DefaultThresholds(),
		Weights:    DefaultWeights(),
	}
}

// Deal-breaker reason codes carried on ScoreResult.
const (
	ReasonCriticalWarning = "critical_warning"
	ReasonNegativeROI     = "negative_roi"
)

// Validate rejects inputs the pipeline cannot meaningfully score.
// Absent optional fields pass; the normalizers supply their defaults.
// A present optional must still hold a sane value.
func Validate(in *domain.ProductInputs) error {
	switch {
	case in == nil:
		return &domain.ValidationError{Field: "inputs", Reason: "missing"}
	case in.SellingPrice <= 0:
		return &domain.ValidationError{Field: "selling_price", Reason: "must be positive"}
	case in.CostPrice <= 0:
		return &domain.ValidationError{Field: "cost_price", Reason: "must be positive"}
	case in.UnitWeightLb < 0:
		return &domain.ValidationError{Field: "unit_weight_lb", Reason: "must not be negative"}
	case in.DimensionsIn.LengthIn < 0 || in.DimensionsIn.WidthIn < 0 || in.DimensionsIn.HeightIn < 0:
		return &domain.ValidationError{Field: "dimensions_in", Reason: "sides must not be negative"}
	case in.AdvertisingCostPerUnit < 0:
		return &domain.ValidationError{Field: "advertising_cost_per_unit", Reason: "must not be negative"}
	case in.SupplierRebatePerUnit < 0:
		return &domain.ValidationError{Field: "supplier_rebate_per_unit", Reason: "must not be negative"}
	case in.RankProxy != nil && *in.RankProxy < 0:
		return &domain.ValidationError{Field: "rank_proxy", Reason: "must not be negative"}
	case in.CompetitorCount != nil && *in.CompetitorCount < 0:
		return &domain.ValidationError{Field: "competitor_count", Reason: "must not be negative"}
	case in.EstimatedUnitsPerMonth != nil && *in.EstimatedUnitsPerMonth < 0:
		return &domain.ValidationError{Field: "estimated_units_per_month", Reason: "must not be negative"}
	case in.EstimatedDaysToSell != nil && *in.EstimatedDaysToSell < 0:
		return &domain.ValidationError{Field: "estimated_days_to_sell", Reason: "must not be negative"}
	}
	return nil
}

// Evaluate runs the full pipeline: classify, estimate fees, compute
// profitability, normalize, warn, aggregate. evalTime fixes the storage
// month so repeated evaluations of the same inputs are identical.
//
// Evaluate never fails. Degraded intermediate results flow through as
// critical warnings and a capped score, not errors.
func Evaluate(in *domain.ProductInputs, cfg *Config, evalTime time.Time) *domain.ScoreResult {
	cls := sizetier.Classify(in.UnitWeightLb, in.DimensionsIn, cfg.SizeTier)
	feeBreakdown := fees.Calculate(in, cls, &cfg.Fees)

	prof := profit.Compute(in, feeBreakdown.TotalFees)
	prof.MonthlyStorageCost = profit.MonthlyStorageCost(
		in.DimensionsIn, cls.Tier, evalTime.Month(), cfg.Storage)

	factors := Normalize(in, cls.Tier, prof.ROIPercent, cfg.Normalize)
	warnings := Warnings(in, feeBreakdown, prof, cfg.Thresholds)

	res := &domain.ScoreResult{
		Factors:       factors,
		Warnings:      warnings,
		Fees:          feeBreakdown,
		Profitability: prof,
	}
	aggregate(res, cfg.Weights)
	return res
}

// aggregate folds the factor scores into the final 1-100 score, applying
// the deal-breaker collapse and the negative-ROI floor.
func aggregate(res *domain.ScoreResult, w Weights) {
	total := w.Total()
	if total <= 0 {
		res.FinalScore = 1
		res.DealBreaker = true
		res.DealBreakerReason = ReasonCriticalWarning
		return
	}

	f := res.Factors
	raw := f.ROI*w.ROI +
		f.Rank*w.Rank +
		f.Competition*w.Competition +
		f.AmazonPresence*w.AmazonPresence +
		f.Weight*w.Weight +
		f.SizeTier*w.SizeTier +
		f.Trend*w.Trend +
		f.Variations*w.Variations +
		f.Seasonality*w.Seasonality +
		f.Delicacy*w.Delicacy +
		f.Velocity*w.Velocity +
		f.DaysToSell*w.DaysToSell
	res.RawWeightedScore = raw

	effective := raw
	if res.HasCritical() {
		res.DealBreaker = true
		res.DealBreakerReason = ReasonCriticalWarning
		// Collapse to a tenth, never above 5% of the achievable total.
		effective = math.Min(raw*0.10, 0.05*total)
	}

	score := int(math.Round(effective / total * 100))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	if res.Profitability.ROIPercent < 0 {
		score = 1
		res.DealBreaker = true
		res.DealBreakerReason = ReasonNegativeROI
	}

	res.FinalScore = score
}
