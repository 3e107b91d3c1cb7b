// Package domain defines the core business types for arbiscout.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SizeTier is the discrete fulfillment size bracket derived from unit
// weight and dimensions. The tier determines which fulfillment-fee table
// applies.
type SizeTier string

// Size tier constants, smallest to largest.
const (
	TierSmallStandard    SizeTier = "small_standard"
	TierLargeStandard    SizeTier = "large_standard"
	TierLargeBulky       SizeTier = "large_bulky"
	TierExtraLarge0To50  SizeTier = "extra_large_0_50"
	TierExtraLarge50To70 SizeTier = "extra_large_50_70"
	TierExtraLarge70To150 SizeTier = "extra_large_70_150"
	TierExtraLarge150Plus SizeTier = "extra_large_150_plus"

	// TierUnknown means classification could not run (missing or zero
	// weight/dimensions) or no bracket matched.
	TierUnknown SizeTier = "unknown"
)

// IsOversize reports whether the tier is outside the two standard brackets.
func (t SizeTier) IsOversize() bool {
	switch t {
	case TierSmallStandard, TierLargeStandard, TierUnknown:
		return false
	default:
		return true
	}
}

// PlacementOption is the inbound placement service level chosen by the
// seller. Optimized splits inventory across facilities at no charge;
// Partial and Minimal concentrate shipments and carry a per-unit fee.
type PlacementOption string

// Placement option constants.
const (
	PlacementOptimized PlacementOption = "optimized"
	PlacementPartial   PlacementOption = "partial"
	PlacementMinimal   PlacementOption = "minimal"
)

// SalesTrend is the observed direction of a product's sales over time.
type SalesTrend string

// Sales trend constants.
const (
	TrendGrowing   SalesTrend = "growing"
	TrendStable    SalesTrend = "stable"
	TrendDeclining SalesTrend = "declining"
)

// WarningLevel orders alert severities.
type WarningLevel string

// Warning level constants.
const (
	LevelInfo     WarningLevel = "info"
	LevelWarning  WarningLevel = "warning"
	LevelCritical WarningLevel = "critical"
)

// Warning is a structured alert about a single raw signal. Warnings are
// generated fresh per evaluation and never persisted by the engine itself.
type Warning struct {
	Level   WarningLevel `json:"level"`
	Metric  string       `json:"metric"`
	Message string       `json:"message"`
}

// Dimensions holds three-axis package dimensions in inches.
type Dimensions struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// Complete reports whether all three sides are present and positive.
func (d Dimensions) Complete() bool {
	return d.LengthIn > 0 && d.WidthIn > 0 && d.HeightIn > 0
}

// VolumeCubicFeet returns the package volume in cubic feet, or 0 when any
// side is missing.
func (d Dimensions) VolumeCubicFeet() float64 {
	if !d.Complete() {
		return 0
	}
	return d.LengthIn * d.WidthIn * d.HeightIn / 1728.0
}

// ProductInputs is the immutable per-request input to an evaluation.
// Pointer fields are optional: absent values degrade to each factor's
// documented neutral or penalized default, they never crash.
type ProductInputs struct {
	SellingPrice float64    `json:"selling_price"`
	CostPrice    float64    `json:"cost_price"`
	Category     string     `json:"category"`
	UnitWeightLb float64    `json:"unit_weight_lb"`
	DimensionsIn Dimensions `json:"dimensions_in"`

	IsApparel        bool            `json:"is_apparel"`
	IsDangerousGood  bool            `json:"is_dangerous_good"`
	InboundPlacement PlacementOption `json:"inbound_placement"`

	RankProxy       *int       `json:"rank_proxy,omitempty"`
	CompetitorCount *int       `json:"competitor_count,omitempty"`
	AmazonIsSeller  bool       `json:"amazon_is_seller"`
	SalesTrend      SalesTrend `json:"sales_trend"`
	IsSeasonal      bool       `json:"is_seasonal"`

	// DelicacyRating is 1..5 where 1 is most fragile.
	DelicacyRating int `json:"delicacy_rating"`
	VariationCount int `json:"variation_count"`

	AdvertisingCostPerUnit float64 `json:"advertising_cost_per_unit"`
	SupplierRebatePerUnit  float64 `json:"supplier_rebate_per_unit"`

	EstimatedUnitsPerMonth *float64 `json:"estimated_units_per_month,omitempty"`
	EstimatedDaysToSell    *float64 `json:"estimated_days_to_sell,omitempty"`
}

// FeeBreakdown holds the per-component marketplace fee estimate.
// SizeTier and ShippingWeightLb are carried alongside so downstream
// consumers can reuse them without recomputation.
type FeeBreakdown struct {
	ReferralFee         float64 `json:"referral_fee"`
	FulfillmentFee      float64 `json:"fulfillment_fee"`
	InboundPlacementFee float64 `json:"inbound_placement_fee"`
	TotalFees           float64 `json:"total_fees"`

	SizeTier           SizeTier `json:"size_tier"`
	FulfillmentProgram string   `json:"fulfillment_program"`
	ShippingWeightLb   float64  `json:"shipping_weight_lb"`

	// Degraded is set when a table lookup missed and a documented zero
	// fallback was used instead. Degraded results always carry a critical
	// warning and are capped by the deal-breaker step.
	Degraded bool `json:"degraded,omitempty"`
}

// ProfitabilityResult holds per-unit profitability figures. The monthly
// storage cost is informational only and feeds neither the score nor any
// warning.
type ProfitabilityResult struct {
	NetProfitPerUnit   float64 `json:"net_profit_per_unit"`
	ROIPercent         float64 `json:"roi_percent"`
	MonthlyStorageCost float64 `json:"monthly_storage_cost"`
}

// FactorScores holds every normalized factor on the common [0,1]
// desirability scale, where 1 is most favorable.
type FactorScores struct {
	ROI            float64 `json:"roi"`
	Rank           float64 `json:"rank"`
	Competition    float64 `json:"competition"`
	Weight         float64 `json:"weight"`
	SizeTier       float64 `json:"size_tier"`
	Trend          float64 `json:"trend"`
	Variations     float64 `json:"variations"`
	Seasonality    float64 `json:"seasonality"`
	Delicacy       float64 `json:"delicacy"`
	Velocity       float64 `json:"velocity"`
	DaysToSell     float64 `json:"days_to_sell"`
	AmazonPresence float64 `json:"amazon_presence"`
}

// ScoreResult is the terminal output of one evaluation. It is constructed
// once per invocation and never retained or mutated by the engine.
type ScoreResult struct {
	FinalScore       int          `json:"final_score"`
	RawWeightedScore float64      `json:"raw_weighted_score"`
	Factors          FactorScores `json:"factors"`
	Warnings         []Warning    `json:"warnings"`

	DealBreaker       bool   `json:"deal_breaker"`
	DealBreakerReason string `json:"deal_breaker_reason,omitempty"`

	Fees          FeeBreakdown        `json:"fees"`
	Profitability ProfitabilityResult `json:"profitability"`

	RateTableVersion string `json:"rate_table_version"`
}

// HasCritical reports whether any warning is critical.
func (r *ScoreResult) HasCritical() bool {
	for _, w := range r.Warnings {
		if w.Level == LevelCritical {
			return true
		}
	}
	return false
}

// ValidationError describes a rejected input field. Evaluations fail
// validation before any computation runs; no ScoreResult is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Analysis is a persisted evaluation: the inputs used, the result produced,
// and the owning identity. The engine itself never reads or writes these;
// persistence belongs to the store collaborator.
type Analysis struct {
	ID         string `json:"id"                   db:"id"`
	OwnerID    string `json:"owner_id"             db:"owner_id"`
	Identifier string `json:"identifier,omitempty" db:"identifier"`
	Title      string `json:"title"                db:"title"`
	Category   string `json:"category"             db:"category"`

	Score            int    `json:"score"              db:"score"`
	RateTableVersion string `json:"rate_table_version" db:"rate_table_version"`

	Inputs ProductInputs `json:"inputs" db:"inputs"`
	Result ScoreResult   `json:"result" db:"result"`

	Notes string `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MarshalInputs returns the inputs as JSON for storage.
func (a *Analysis) MarshalInputs() (json.RawMessage, error) {
	return json.Marshal(a.Inputs)
}

// MarshalResult returns the result as JSON for storage.
func (a *Analysis) MarshalResult() (json.RawMessage, error) {
	return json.Marshal(a.Result)
}
