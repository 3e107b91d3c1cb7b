// Package fees estimates marketplace fees (referral, fulfillment, inbound
// placement) for a classified product. The numeric rates live in a
// versioned Schedule supplied by configuration; this package implements
// only the lookup contract. Lookup misses degrade to documented zero
// fallbacks and flag the breakdown, they never panic.
package fees

import (
	"math"
	"strings"

	"github.com/arbiscout/arbiscout/pkg/sizetier"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Fulfillment program names. The program picks which fulfillment-fee table
// applies.
const (
	ProgramStandardNonApparel = "standard_non_apparel"
	ProgramStandardApparel    = "standard_apparel"
	ProgramLowPriceNonApparel = "low_price_non_apparel"
	ProgramLowPriceApparel    = "low_price_apparel"
	ProgramDangerousGoods     = "dangerous_goods"
)

// ReferralTable maps product categories to referral rates with a global
// floor fee.
type ReferralTable struct {
	// Rates are fractional (0.15 = 15%). Unknown categories fall back to
	// DefaultRate.
	Rates       map[string]float64 `yaml:"rates"`
	DefaultRate float64            `yaml:"default_rate"`
	FloorFee    float64            `yaml:"floor_fee"`
}

// WeightBand is one fulfillment-fee step: the fee charged up to and
// including MaxWeightLb of rounded shipping weight.
type WeightBand struct {
	MaxWeightLb float64 `yaml:"max_weight_lb"`
	Fee         float64 `yaml:"fee"`
}

// FulfillmentTable is the fee curve for one (program, tier) pair. Weights
// beyond the last band are charged OverflowBase plus OverflowPerLb for each
// pound past the last band's limit.
type FulfillmentTable struct {
	Bands         []WeightBand `yaml:"bands"`
	OverflowBase  float64      `yaml:"overflow_base"`
	OverflowPerLb float64      `yaml:"overflow_per_lb"`
}

// PlacementRange is a (min,max) inbound placement fee for one weight band;
// the estimate uses the arithmetic mean.
type PlacementRange struct {
	MaxWeightLb float64 `yaml:"max_weight_lb"`
	MinFee      float64 `yaml:"min_fee"`
	MaxFee      float64 `yaml:"max_fee"`
}

// PlacementTable holds inbound placement ranges per option, split by tier
// family. Optimized placement is always free.
type PlacementTable struct {
	Standard map[domain.PlacementOption][]PlacementRange `yaml:"standard"`
	Oversize map[domain.PlacementOption][]PlacementRange `yaml:"oversize"`
}

// Schedule is the injected rate table: every marketplace-specific number
// the calculator consults. Load once, treat as immutable.
type Schedule struct {
	Referral ReferralTable `yaml:"referral"`

	// LowPriceCutoff routes items at or below this selling price to the
	// low-price fulfillment programs.
	LowPriceCutoff float64 `yaml:"low_price_cutoff"`

	// Fulfillment is keyed by program, then tier.
	Fulfillment map[string]map[domain.SizeTier]FulfillmentTable `yaml:"fulfillment"`

	Placement PlacementTable `yaml:"placement"`

	// Packaging overhead added to the shipping weight before rounding.
	PackagingStandardLb float64 `yaml:"packaging_standard_lb"`
	PackagingOversizeLb float64 `yaml:"packaging_oversize_lb"`
}

// Calculate produces the full fee breakdown for a classified product.
// It never returns an error: any lookup miss yields a zero component and
// a Degraded flag the caller must surface as a critical warning.
func Calculate(in *domain.ProductInputs, cls sizetier.Result, s *Schedule) domain.FeeBreakdown {
	b := domain.FeeBreakdown{SizeTier: cls.Tier}

	b.ReferralFee = referralFee(in.SellingPrice, in.Category, s.Referral)
	b.FulfillmentProgram = selectProgram(in, s.LowPriceCutoff)

	if cls.Tier != domain.TierUnknown {
		b.ShippingWeightLb = shippingWeight(in.UnitWeightLb, cls, s)
		fee, ok := fulfillmentFee(b.FulfillmentProgram, cls.Tier, b.ShippingWeightLb, s)
		if !ok {
			b.Degraded = true
		}
		b.FulfillmentFee = fee

		b.InboundPlacementFee = placementFee(
			in.InboundPlacement, cls.Tier, in.UnitWeightLb, s.Placement,
		)
	} else {
		// Unknown tier: fulfillment fee is undefined. Callers detect this
		// via SizeTier and escalate a critical warning.
		b.Degraded = true
	}

	b.TotalFees = b.ReferralFee + b.FulfillmentFee + b.InboundPlacementFee
	return b
}

// referralFee is max(price*rate, floor), zero for non-positive prices.
func referralFee(price float64, category string, t ReferralTable) float64 {
	if price <= 0 {
		return 0
	}
	// Rate keys are lowercase; category strings arrive from catalogs with
	// arbitrary casing.
	rate, ok := t.Rates[strings.ToLower(category)]
	if !ok {
		rate = t.DefaultRate
	}
	return max(price*rate, t.FloorFee)
}

func selectProgram(in *domain.ProductInputs, lowPriceCutoff float64) string {
	if in.IsDangerousGood {
		return ProgramDangerousGoods
	}
	lowPrice := lowPriceCutoff > 0 && in.SellingPrice <= lowPriceCutoff
	switch {
	case lowPrice && in.IsApparel:
		return ProgramLowPriceApparel
	case lowPrice:
		return ProgramLowPriceNonApparel
	case in.IsApparel:
		return ProgramStandardApparel
	default:
		return ProgramStandardNonApparel
	}
}

// shippingWeight derives the billable weight: dimensional weight applies
// except for SmallStandard and the heaviest bracket, packaging overhead is
// added per tier family, and the result rounds up to the next ounce
// (SmallStandard) or pound (everything else).
func shippingWeight(unitWeightLb float64, cls sizetier.Result, s *Schedule) float64 {
	w := max(unitWeightLb, cls.DimensionalWeightLb)
	if cls.Tier == domain.TierSmallStandard || cls.Tier == domain.TierExtraLarge150Plus {
		w = unitWeightLb
	}

	if cls.Tier.IsOversize() {
		w += s.PackagingOversizeLb
	} else {
		w += s.PackagingStandardLb
	}

	if cls.Tier == domain.TierSmallStandard {
		// Round up to the next ounce.
		return math.Ceil(w*16) / 16
	}
	return math.Ceil(w)
}

func fulfillmentFee(program string, tier domain.SizeTier, weightLb float64, s *Schedule) (float64, bool) {
	tiers, ok := s.Fulfillment[program]
	if !ok {
		return 0, false
	}
	table, ok := tiers[tier]
	if !ok {
		return 0, false
	}

	for _, band := range table.Bands {
		if weightLb <= band.MaxWeightLb {
			return band.Fee, true
		}
	}

	if len(table.Bands) == 0 {
		return 0, false
	}

	last := table.Bands[len(table.Bands)-1]
	over := math.Ceil(weightLb - last.MaxWeightLb)
	return table.OverflowBase + over*table.OverflowPerLb, true
}

// placementFee estimates the inbound placement surcharge using the range
// midpoint. Optimized placement and unmatched lookups cost nothing.
func placementFee(opt domain.PlacementOption, tier domain.SizeTier, unitWeightLb float64, t PlacementTable) float64 {
	if opt == "" || opt == domain.PlacementOptimized {
		return 0
	}

	family := t.Standard
	if tier.IsOversize() {
		family = t.Oversize
	}

	ranges, ok := family[opt]
	if !ok {
		return 0
	}

	for _, r := range ranges {
		if r.MaxWeightLb == 0 || unitWeightLb <= r.MaxWeightLb {
			return (r.MinFee + r.MaxFee) / 2
		}
	}
	return 0
}
