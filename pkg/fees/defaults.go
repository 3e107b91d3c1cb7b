package fees

import (
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// DefaultSchedule returns an estimated US-marketplace rate table. These
// numbers are rounded approximations for offline estimation, not a
// published fee schedule; production deployments should load a maintained
// table from configuration.
func DefaultSchedule() *Schedule {
	return &Schedule{
		Referral: ReferralTable{
			Rates: map[string]float64{
				"electronics":     0.08,
				"computers":       0.08,
				"camera":          0.08,
				"video_games":     0.15,
				"clothing":        0.17,
				"shoes":           0.15,
				"jewelry":         0.20,
				"watches":         0.16,
				"home":            0.15,
				"kitchen":         0.15,
				"toys":            0.15,
				"grocery":         0.15,
				"beauty":          0.15,
				"health":          0.15,
				"books":           0.15,
				"sports":          0.15,
				"office_products": 0.15,
				"pet_supplies":    0.15,
			},
			DefaultRate: 0.15,
			FloorFee:    0.30,
		},

		LowPriceCutoff: 10.00,

		PackagingStandardLb: 0.25,
		PackagingOversizeLb: 1.00,

		Fulfillment: map[string]map[domain.SizeTier]FulfillmentTable{
			ProgramStandardNonApparel: {
				domain.TierSmallStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 0.25, Fee: 3.06},
						{MaxWeightLb: 0.50, Fee: 3.22},
						{MaxWeightLb: 0.75, Fee: 3.40},
						{MaxWeightLb: 1.00, Fee: 3.58},
						{MaxWeightLb: 1.25, Fee: 3.77},
					},
					OverflowBase:  3.77,
					OverflowPerLb: 0.16,
				},
				domain.TierLargeStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 1, Fee: 4.75},
						{MaxWeightLb: 2, Fee: 5.40},
						{MaxWeightLb: 3, Fee: 6.08},
					},
					OverflowBase:  6.08,
					OverflowPerLb: 0.32,
				},
				domain.TierLargeBulky: {
					Bands: []WeightBand{
						{MaxWeightLb: 5, Fee: 9.61},
						{MaxWeightLb: 10, Fee: 11.33},
						{MaxWeightLb: 20, Fee: 13.60},
						{MaxWeightLb: 30, Fee: 15.94},
						{MaxWeightLb: 51, Fee: 19.05},
					},
					OverflowBase:  19.05,
					OverflowPerLb: 0.38,
				},
				domain.TierExtraLarge0To50: {
					Bands:         []WeightBand{{MaxWeightLb: 51, Fee: 26.33}},
					OverflowBase:  26.33,
					OverflowPerLb: 0.38,
				},
				domain.TierExtraLarge50To70: {
					Bands:         []WeightBand{{MaxWeightLb: 71, Fee: 40.12}},
					OverflowBase:  40.12,
					OverflowPerLb: 0.75,
				},
				domain.TierExtraLarge70To150: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 54.81}},
					OverflowBase:  54.81,
					OverflowPerLb: 0.75,
				},
				domain.TierExtraLarge150Plus: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 194.95}},
					OverflowBase:  194.95,
					OverflowPerLb: 0.19,
				},
			},

			ProgramStandardApparel: {
				domain.TierSmallStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 0.25, Fee: 3.27},
						{MaxWeightLb: 0.50, Fee: 3.42},
						{MaxWeightLb: 0.75, Fee: 3.72},
						{MaxWeightLb: 1.00, Fee: 3.98},
						{MaxWeightLb: 1.25, Fee: 4.17},
					},
					OverflowBase:  4.17,
					OverflowPerLb: 0.16,
				},
				domain.TierLargeStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 1, Fee: 5.03},
						{MaxWeightLb: 2, Fee: 5.77},
						{MaxWeightLb: 3, Fee: 6.55},
					},
					OverflowBase:  6.55,
					OverflowPerLb: 0.32,
				},
				domain.TierLargeBulky: {
					Bands: []WeightBand{
						{MaxWeightLb: 5, Fee: 9.61},
						{MaxWeightLb: 10, Fee: 11.33},
						{MaxWeightLb: 20, Fee: 13.60},
						{MaxWeightLb: 30, Fee: 15.94},
						{MaxWeightLb: 51, Fee: 19.05},
					},
					OverflowBase:  19.05,
					OverflowPerLb: 0.38,
				},
				domain.TierExtraLarge0To50: {
					Bands:         []WeightBand{{MaxWeightLb: 51, Fee: 26.33}},
					OverflowBase:  26.33,
					OverflowPerLb: 0.38,
				},
				domain.TierExtraLarge50To70: {
					Bands:         []WeightBand{{MaxWeightLb: 71, Fee: 40.12}},
					OverflowBase:  40.12,
					OverflowPerLb: 0.75,
				},
				domain.TierExtraLarge70To150: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 54.81}},
					OverflowBase:  54.81,
					OverflowPerLb: 0.75,
				},
				domain.TierExtraLarge150Plus: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 194.95}},
					OverflowBase:  194.95,
					OverflowPerLb: 0.19,
				},
			},

			// Low-price programs only exist for the standard tiers; an
			// oversize item under the cutoff is a lookup miss and degrades.
			ProgramLowPriceNonApparel: {
				domain.TierSmallStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 0.25, Fee: 2.29},
						{MaxWeightLb: 0.50, Fee: 2.45},
						{MaxWeightLb: 0.75, Fee: 2.63},
						{MaxWeightLb: 1.00, Fee: 2.81},
						{MaxWeightLb: 1.25, Fee: 3.00},
					},
					OverflowBase:  3.00,
					OverflowPerLb: 0.16,
				},
				domain.TierLargeStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 1, Fee: 3.98},
						{MaxWeightLb: 2, Fee: 4.63},
						{MaxWeightLb: 3, Fee: 5.31},
					},
					OverflowBase:  5.31,
					OverflowPerLb: 0.32,
				},
			},
			ProgramLowPriceApparel: {
				domain.TierSmallStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 0.25, Fee: 2.50},
						{MaxWeightLb: 0.50, Fee: 2.65},
						{MaxWeightLb: 0.75, Fee: 2.95},
						{MaxWeightLb: 1.00, Fee: 3.21},
						{MaxWeightLb: 1.25, Fee: 3.40},
					},
					OverflowBase:  3.40,
					OverflowPerLb: 0.16,
				},
				domain.TierLargeStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 1, Fee: 4.26},
						{MaxWeightLb: 2, Fee: 5.00},
						{MaxWeightLb: 3, Fee: 5.78},
					},
					OverflowBase:  5.78,
					OverflowPerLb: 0.32,
				},
			},

			ProgramDangerousGoods: {
				domain.TierSmallStandard: {
					Bands:         []WeightBand{{MaxWeightLb: 1.25, Fee: 4.43}},
					OverflowBase:  4.43,
					OverflowPerLb: 0.20,
				},
				domain.TierLargeStandard: {
					Bands: []WeightBand{
						{MaxWeightLb: 1, Fee: 5.82},
						{MaxWeightLb: 2, Fee: 6.47},
						{MaxWeightLb: 3, Fee: 7.15},
					},
					OverflowBase:  7.15,
					OverflowPerLb: 0.40,
				},
				domain.TierLargeBulky: {
					Bands:         []WeightBand{{MaxWeightLb: 51, Fee: 22.78}},
					OverflowBase:  22.78,
					OverflowPerLb: 0.50,
				},
				domain.TierExtraLarge0To50: {
					Bands:         []WeightBand{{MaxWeightLb: 51, Fee: 31.19}},
					OverflowBase:  31.19,
					OverflowPerLb: 0.50,
				},
				domain.TierExtraLarge50To70: {
					Bands:         []WeightBand{{MaxWeightLb: 71, Fee: 45.72}},
					OverflowBase:  45.72,
					OverflowPerLb: 0.88,
				},
				domain.TierExtraLarge70To150: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 61.02}},
					OverflowBase:  61.02,
					OverflowPerLb: 0.88,
				},
				domain.TierExtraLarge150Plus: {
					Bands:         []WeightBand{{MaxWeightLb: 151, Fee: 205.44}},
					OverflowBase:  205.44,
					OverflowPerLb: 0.25,
				},
			},
		},

		Placement: PlacementTable{
			Standard: map[domain.PlacementOption][]PlacementRange{
				domain.PlacementPartial: {
					{MaxWeightLb: 1, MinFee: 0.21, MaxFee: 0.68},
					{MaxWeightLb: 5, MinFee: 0.35, MaxFee: 1.20},
					{MinFee: 0.55, MaxFee: 1.60},
				},
				domain.PlacementMinimal: {
					{MaxWeightLb: 1, MinFee: 0.30, MaxFee: 1.00},
					{MaxWeightLb: 5, MinFee: 0.50, MaxFee: 1.75},
					{MinFee: 0.80, MaxFee: 2.40},
				},
			},
			Oversize: map[domain.PlacementOption][]PlacementRange{
				domain.PlacementPartial: {
					{MaxWeightLb: 5, MinFee: 1.10, MaxFee: 2.10},
					{MaxWeightLb: 40, MinFee: 1.75, MaxFee: 3.50},
					{MinFee: 2.60, MaxFee: 5.00},
				},
				domain.PlacementMinimal: {
					{MaxWeightLb: 5, MinFee: 1.60, MaxFee: 3.10},
					{MaxWeightLb: 40, MinFee: 2.40, MaxFee: 4.80},
					{MinFee: 3.50, MaxFee: 6.80},
				},
			},
		},
	}
}
