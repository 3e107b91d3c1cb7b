package score

import (
	"fmt"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Thresholds holds the raw-signal limits that trigger warnings. Each
// signal has at most two levels; crossing the higher one supersedes the
// lower.
type Thresholds struct {
	ROIWarnBelowPercent     float64 `yaml:"roi_warn_below_percent"`
	ROICriticalBelowPercent float64 `yaml:"roi_critical_below_percent"`

	RankWarnAbove     int `yaml:"rank_warn_above"`
	RankCriticalAbove int `yaml:"rank_critical_above"`

	CompetitorsWarnAbove     int `yaml:"competitors_warn_above"`
	CompetitorsCriticalAbove int `yaml:"competitors_critical_above"`

	WeightWarnAboveLb float64 `yaml:"weight_warn_above_lb"`
	// HardWeightCeilingLb is both a critical warning and a deal breaker.
	HardWeightCeilingLb float64 `yaml:"hard_weight_ceiling_lb"`

	VariationsWarnAbove     int `yaml:"variations_warn_above"`
	VariationsCriticalAbove int `yaml:"variations_critical_above"`
}

// DefaultThresholds returns the default warning limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ROIWarnBelowPercent:     20,
		ROICriticalBelowPercent: 10,

		RankWarnAbove:     100000,
		RankCriticalAbove: 250000,

		CompetitorsWarnAbove:     15,
		CompetitorsCriticalAbove: 30,

		WeightWarnAboveLb:   20,
		HardWeightCeilingLb: 50,

		VariationsWarnAbove:     10,
		VariationsCriticalAbove: 20,
	}
}

// Warnings derives the full alert list for one evaluation. The list order
// is deterministic: threshold-driven signals first, then flag-driven
// entries. Warnings are advisory except criticals, which the aggregation
// step treats as deal breakers.
func Warnings(
	in *domain.ProductInputs,
	fees domain.FeeBreakdown,
	prof domain.ProfitabilityResult,
	th Thresholds,
) []domain.Warning {
	var ws []domain.Warning
	add := func(level domain.WarningLevel, metric, format string, args ...any) {
		ws = append(ws, domain.Warning{
			Level:   level,
			Metric:  metric,
			Message: fmt.Sprintf(format, args...),
		})
	}

	switch {
	case prof.NetProfitPerUnit < 0:
		add(domain.LevelCritical, "roi", "negative ROI: losing %.2f per unit", -prof.NetProfitPerUnit)
	case prof.ROIPercent < th.ROICriticalBelowPercent:
		add(domain.LevelCritical, "roi", "ROI %.1f%% is below the %.0f%% floor", prof.ROIPercent, th.ROICriticalBelowPercent)
	case prof.ROIPercent < th.ROIWarnBelowPercent:
		add(domain.LevelWarning, "roi", "ROI %.1f%% is below the %.0f%% target", prof.ROIPercent, th.ROIWarnBelowPercent)
	}

	switch {
	case in.RankProxy == nil:
		add(domain.LevelWarning, "rank_proxy", "no sales rank available, demand is unverified")
	case *in.RankProxy > th.RankCriticalAbove:
		add(domain.LevelCritical, "rank_proxy", "sales rank %d indicates near-zero demand", *in.RankProxy)
	case *in.RankProxy > th.RankWarnAbove:
		add(domain.LevelWarning, "rank_proxy", "sales rank %d indicates slow demand", *in.RankProxy)
	}

	if in.CompetitorCount != nil {
		switch {
		case *in.CompetitorCount > th.CompetitorsCriticalAbove:
			add(domain.LevelCritical, "competitor_count", "%d competing sellers, margin erosion is near certain", *in.CompetitorCount)
		case *in.CompetitorCount > th.CompetitorsWarnAbove:
			add(domain.LevelWarning, "competitor_count", "%d competing sellers on the listing", *in.CompetitorCount)
		}
	}

	switch {
	case in.UnitWeightLb > th.HardWeightCeilingLb:
		add(domain.LevelCritical, "unit_weight_lb", "unit weight %.1f lb exceeds the %.0f lb ceiling", in.UnitWeightLb, th.HardWeightCeilingLb)
	case in.UnitWeightLb > th.WeightWarnAboveLb:
		add(domain.LevelWarning, "unit_weight_lb", "unit weight %.1f lb carries heavy fulfillment fees", in.UnitWeightLb)
	}

	switch {
	case in.VariationCount > th.VariationsCriticalAbove:
		add(domain.LevelCritical, "variation_count", "%d variations fragment demand beyond viability", in.VariationCount)
	case in.VariationCount > th.VariationsWarnAbove:
		add(domain.LevelWarning, "variation_count", "%d variations dilute per-variation demand", in.VariationCount)
	}

	if fees.SizeTier == domain.TierUnknown {
		add(domain.LevelCritical, "size_tier", "size tier could not be determined, fee estimate is unreliable")
	} else if fees.SizeTier.IsOversize() {
		add(domain.LevelWarning, "size_tier", "oversize tier %s carries elevated fulfillment fees", fees.SizeTier)
	}
	if fees.Degraded && fees.SizeTier != domain.TierUnknown {
		add(domain.LevelCritical, "fees", "fee table lookup missed for program %s, estimate is degraded", fees.FulfillmentProgram)
	}

	if in.AmazonIsSeller {
		add(domain.LevelWarning, "amazon_is_seller", "Amazon sells this listing directly")
	}
	if in.IsDangerousGood {
		add(domain.LevelWarning, "is_dangerous_good", "dangerous-goods handling restricts storage and shipping")
	}
	if in.IsSeasonal {
		add(domain.LevelInfo, "is_seasonal", "seasonal demand, time inventory accordingly")
	}
	if in.InboundPlacement == domain.PlacementPartial || in.InboundPlacement == domain.PlacementMinimal {
		add(domain.LevelInfo, "inbound_placement", "%s placement adds a per-unit inbound fee", in.InboundPlacement)
	}
	if in.AdvertisingCostPerUnit > 0 {
		add(domain.LevelInfo, "advertising_cost_per_unit", "advertising spend of %.2f per unit is included in net profit", in.AdvertisingCostPerUnit)
	}
	if in.SupplierRebatePerUnit > 0 {
		add(domain.LevelInfo, "supplier_rebate_per_unit", "supplier rebate of %.2f per unit is included in net profit", in.SupplierRebatePerUnit)
	}

	return ws
}
