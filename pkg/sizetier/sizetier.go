// Package sizetier classifies a product into a fulfillment size tier from
// its unit weight and three-axis dimensions. Classification is pure and
// total: it always returns a tier and never panics; incomplete inputs
// resolve to TierUnknown.
package sizetier

import (
	"sort"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Bracket is one ordered classification rule. A bracket matches when every
// non-zero limit holds; a zero limit means "no constraint". Brackets are
// evaluated top to bottom and the first match wins.
type Bracket struct {
	Tier             domain.SizeTier `yaml:"tier"`
	MaxWeightLb      float64         `yaml:"max_weight_lb"`
	MaxLongestIn     float64         `yaml:"max_longest_in"`
	MaxMedianIn      float64         `yaml:"max_median_in"`
	MaxShortestIn    float64         `yaml:"max_shortest_in"`
	MaxLengthGirthIn float64         `yaml:"max_length_girth_in"`
}

// WeightBand buckets oversize items by tier weight. MaxWeightLb of zero
// means unbounded.
type WeightBand struct {
	Tier        domain.SizeTier `yaml:"tier"`
	MaxWeightLb float64         `yaml:"max_weight_lb"`
}

// Config holds the classification rule table. The numeric limits are
// marketplace configuration, versioned alongside the fee schedule.
type Config struct {
	// DimensionalDivisor converts cubic inches to a dimensional-weight
	// proxy in pounds (volume / divisor).
	DimensionalDivisor float64 `yaml:"dimensional_divisor"`

	Brackets []Bracket `yaml:"brackets"`

	// OversizeBands bucket anything past the last bracket by tier weight.
	OversizeBands []WeightBand `yaml:"oversize_bands"`
}

// DefaultConfig returns bracket limits approximating the US marketplace
// size tiers. These are estimates, not a published schedule.
func DefaultConfig() Config {
	return Config{
		DimensionalDivisor: 139,
		Brackets: []Bracket{
			{
				Tier:          domain.TierSmallStandard,
				MaxWeightLb:   1,
				MaxLongestIn:  15,
				MaxMedianIn:   12,
				MaxShortestIn: 6,
			},
			{
				Tier:          domain.TierLargeStandard,
				MaxWeightLb:   20,
				MaxLongestIn:  18,
				MaxMedianIn:   14,
				MaxShortestIn: 8,
			},
			{
				Tier:             domain.TierLargeBulky,
				MaxWeightLb:      50,
				MaxLongestIn:     59,
				MaxMedianIn:      33,
				MaxShortestIn:    33,
				MaxLengthGirthIn: 130,
			},
		},
		OversizeBands: []WeightBand{
			{Tier: domain.TierExtraLarge0To50, MaxWeightLb: 50},
			{Tier: domain.TierExtraLarge50To70, MaxWeightLb: 70},
			{Tier: domain.TierExtraLarge70To150, MaxWeightLb: 150},
			{Tier: domain.TierExtraLarge150Plus},
		},
	}
}

// Result carries the derived tier together with the intermediate weights
// the fee calculator reuses.
type Result struct {
	Tier domain.SizeTier

	// DimensionalWeightLb is (longest*median*shortest)/divisor.
	DimensionalWeightLb float64

	// WeightForTierLb is max(unit weight, dimensional weight), the weight
	// used for bracket evaluation.
	WeightForTierLb float64
}

// Classify derives the size tier for the given unit weight and dimensions.
// Missing or non-positive inputs return TierUnknown immediately.
func Classify(unitWeightLb float64, dims domain.Dimensions, cfg Config) Result {
	if unitWeightLb <= 0 || !dims.Complete() {
		return Result{Tier: domain.TierUnknown}
	}

	sides := []float64{dims.LengthIn, dims.WidthIn, dims.HeightIn}
	sort.Float64s(sides)
	shortest, median, longest := sides[0], sides[1], sides[2]

	girth := 2 * (median + shortest)
	lengthPlusGirth := longest + girth

	var dimWeight float64
	if cfg.DimensionalDivisor > 0 {
		dimWeight = longest * median * shortest / cfg.DimensionalDivisor
	}

	weightForTier := max(unitWeightLb, dimWeight)

	res := Result{
		Tier:                domain.TierUnknown,
		DimensionalWeightLb: dimWeight,
		WeightForTierLb:     weightForTier,
	}

	for _, b := range cfg.Brackets {
		if matches(b, weightForTier, longest, median, shortest, lengthPlusGirth) {
			res.Tier = b.Tier
			return res
		}
	}

	for _, band := range cfg.OversizeBands {
		if band.MaxWeightLb == 0 || weightForTier <= band.MaxWeightLb {
			res.Tier = band.Tier
			return res
		}
	}

	return res
}

func matches(b Bracket, weight, longest, median, shortest, lengthPlusGirth float64) bool {
	if b.MaxWeightLb > 0 && weight > b.MaxWeightLb {
		return false
	}
	if b.MaxLongestIn > 0 && longest > b.MaxLongestIn {
		return false
	}
	if b.MaxMedianIn > 0 && median > b.MaxMedianIn {
		return false
	}
	if b.MaxShortestIn > 0 && shortest > b.MaxShortestIn {
		return false
	}
	if b.MaxLengthGirthIn > 0 && lengthPlusGirth > b.MaxLengthGirthIn {
		return false
	}
	return true
}
