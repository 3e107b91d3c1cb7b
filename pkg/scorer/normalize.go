package score

import (
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Band is one step of a piecewise curve: Score applies up to and including
// Max. Bands are evaluated in order; values past the last band get the
// curve's beyond-score.
type Band struct {
	Max   float64 `yaml:"max"`
	Score float64 `yaml:"score"`
}

// ROICurve rises linearly from 0 at MinPercent to 1 at TargetPercent.
type ROICurve struct {
	MinPercent    float64 `yaml:"min_percent"`
	TargetPercent float64 `yaml:"target_percent"`
}

// NormalizeConfig holds every normalization curve. Breakpoints are tunable
// configuration; the shape and direction of each curve are the contract.
type NormalizeConfig struct {
	ROI ROICurve `yaml:"roi"`

	RankBands  []Band  `yaml:"rank_bands"`
	RankBeyond float64 `yaml:"rank_beyond"`

	CompetitorBands []Band `yaml:"competitor_bands"`

	WeightBands []Band `yaml:"weight_bands"`

	TierScores       map[domain.SizeTier]float64 `yaml:"tier_scores"`
	TierUnknownScore float64                     `yaml:"tier_unknown_score"`

	TrendScores map[domain.SalesTrend]float64 `yaml:"trend_scores"`

	VariationBands []Band `yaml:"variation_bands"`

	SeasonalScore float64 `yaml:"seasonal_score"`

	// DelicacyFavorsHigh maps rating 5 to 1.0 when true (the engine's
	// convention: 1 is most fragile, so sturdier is better).
	DelicacyFavorsHigh bool `yaml:"delicacy_favors_high"`

	VelocityBands []Band `yaml:"velocity_bands"`

	DaysToSellBands []Band `yaml:"days_to_sell_bands"`
}

// DefaultNormalizeConfig returns the default curve breakpoints.
func DefaultNormalizeConfig() NormalizeConfig {
	return NormalizeConfig{
		ROI: ROICurve{MinPercent: 15, TargetPercent: 100},

		RankBands: []Band{
			{Max: 1000, Score: 1.0},
			{Max: 10000, Score: 0.8},
			{Max: 50000, Score: 0.6},
			{Max: 100000, Score: 0.4},
			{Max: 250000, Score: 0.2},
		},
		RankBeyond: 0.05,

		CompetitorBands: []Band{
			{Max: 0, Score: 0.8},
			{Max: 3, Score: 1.0},
			{Max: 7, Score: 0.7},
			{Max: 15, Score: 0.4},
			{Max: 30, Score: 0.2},
		},

		WeightBands: []Band{
			{Max: 1, Score: 1.0},
			{Max: 3, Score: 0.7},
			{Max: 5, Score: 0.45},
			{Max: 10, Score: 0.25},
			{Max: 50, Score: 0.1},
		},

		TierScores: map[domain.SizeTier]float64{
			domain.TierSmallStandard:     1.0,
			domain.TierLargeStandard:     0.8,
			domain.TierLargeBulky:        0.5,
			domain.TierExtraLarge0To50:   0.35,
			domain.TierExtraLarge50To70:  0.25,
			domain.TierExtraLarge70To150: 0.15,
			domain.TierExtraLarge150Plus: 0.1,
		},
		TierUnknownScore: 0.5,

		TrendScores: map[domain.SalesTrend]float64{
			domain.TrendGrowing:   1.0,
			domain.TrendStable:    0.6,
			domain.TrendDeclining: 0.0,
		},

		VariationBands: []Band{
			{Max: 1, Score: 1.0},
			{Max: 2, Score: 0.8},
			{Max: 5, Score: 0.6},
			{Max: 10, Score: 0.35},
			{Max: 20, Score: 0.15},
		},

		SeasonalScore: 0.4,

		DelicacyFavorsHigh: true,

		VelocityBands: []Band{
			{Max: 5, Score: 0.1},
			{Max: 20, Score: 0.45},
			{Max: 50, Score: 0.75},
		},

		DaysToSellBands: []Band{
			{Max: 1, Score: 1.0},
			{Max: 7, Score: 0.8},
			{Max: 14, Score: 0.6},
			{Max: 30, Score: 0.4},
			{Max: 60, Score: 0.2},
		},
	}
}

// Normalize maps every raw signal onto [0,1] where 1 is most favorable.
// Every normalizer is total: missing or out-of-domain input returns the
// documented default, never an error.
func Normalize(
	in *domain.ProductInputs,
	tier domain.SizeTier,
	roiPercent float64,
	cfg NormalizeConfig,
) domain.FactorScores {
	return domain.FactorScores{
		ROI:            normalizeROI(roiPercent, cfg.ROI),
		Rank:           normalizeRank(in.RankProxy, cfg),
		Competition:    normalizeCompetitors(in.CompetitorCount, cfg.CompetitorBands),
		Weight:         normalizeWeight(in.UnitWeightLb, cfg.WeightBands),
		SizeTier:       normalizeTier(tier, cfg),
		Trend:          normalizeTrend(in.SalesTrend, cfg.TrendScores),
		Variations:     normalizeVariations(in.VariationCount, cfg.VariationBands),
		Seasonality:    normalizeSeasonality(in.IsSeasonal, cfg.SeasonalScore),
		Delicacy:       normalizeDelicacy(in.DelicacyRating, cfg.DelicacyFavorsHigh),
		Velocity:       normalizeVelocity(in.EstimatedUnitsPerMonth, cfg.VelocityBands),
		DaysToSell:     normalizeDaysToSell(in.EstimatedDaysToSell, cfg.DaysToSellBands),
		AmazonPresence: normalizeAmazonPresence(in.AmazonIsSeller),
	}
}

// normalizeROI is 0 below the minimum threshold, rising linearly to 1 at
// the target, capped there.
func normalizeROI(roiPercent float64, c ROICurve) float64 {
	if roiPercent <= c.MinPercent {
		return 0
	}
	if roiPercent >= c.TargetPercent || c.TargetPercent <= c.MinPercent {
		return 1
	}
	return (roiPercent - c.MinPercent) / (c.TargetPercent - c.MinPercent)
}

// normalizeRank decreases with rank (lower rank sells faster), saturating
// near zero for very high ranks. Missing rank is treated as worst.
func normalizeRank(rank *int, cfg NormalizeConfig) float64 {
	if rank == nil || *rank <= 0 {
		return 0
	}
	return bandScore(float64(*rank), cfg.RankBands, cfg.RankBeyond)
}

// normalizeCompetitors peaks in a low-count sweet spot and decreases from
// there. Missing count is neutral.
func normalizeCompetitors(count *int, bands []Band) float64 {
	if count == nil || *count < 0 {
		return 0.5
	}
	return bandScore(float64(*count), bands, 0)
}

// normalizeWeight is non-increasing through the configured bands, zero
// above the heaviest. Missing weight is neutral.
func normalizeWeight(weightLb float64, bands []Band) float64 {
	if weightLb <= 0 {
		return 0.5
	}
	return bandScore(weightLb, bands, 0)
}

func normalizeTier(tier domain.SizeTier, cfg NormalizeConfig) float64 {
	if s, ok := cfg.TierScores[tier]; ok {
		return s
	}
	return cfg.TierUnknownScore
}

func normalizeTrend(trend domain.SalesTrend, scores map[domain.SalesTrend]float64) float64 {
	if s, ok := scores[trend]; ok {
		return s
	}
	return 0.5
}

func normalizeVariations(count int, bands []Band) float64 {
	if count <= 0 {
		return 0.5
	}
	return bandScore(float64(count), bands, 0)
}

func normalizeSeasonality(seasonal bool, penalty float64) float64 {
	if seasonal {
		return penalty
	}
	return 1.0
}

// normalizeDelicacy maps the 1..5 rating linearly onto [0,1]. Ratings
// outside the scale are neutral.
func normalizeDelicacy(rating int, favorsHigh bool) float64 {
	if rating < 1 || rating > 5 {
		return 0.5
	}
	if favorsHigh {
		return float64(rating-1) / 4
	}
	return float64(5-rating) / 4
}

// normalizeVelocity deliberately treats an absent estimate as the worst
// score, not neutral: unknown sales velocity is a material risk.
func normalizeVelocity(unitsPerMonth *float64, bands []Band) float64 {
	if unitsPerMonth == nil || *unitsPerMonth < 0 {
		return 0
	}
	return bandScore(*unitsPerMonth, bands, 1.0)
}

func normalizeDaysToSell(days *float64, bands []Band) float64 {
	if days == nil || *days < 0 {
		return 0.5
	}
	return bandScore(*days, bands, 0)
}

func normalizeAmazonPresence(amazonSells bool) float64 {
	if amazonSells {
		return 0
	}
	return 1
}

func bandScore(val float64, bands []Band, beyond float64) float64 {
	for _, b := range bands {
		if val <= b.Max {
			return b.Score
		}
	}
	return beyond
}
