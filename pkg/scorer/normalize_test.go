package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

func intp(v int) *int          { return &v }
func floatp(v float64) *float64 { return &v }

func TestNormalizeROI(t *testing.T) {
	t.Parallel()

	c := ROICurve{MinPercent: 15, TargetPercent: 100}

	tests := []struct {
		name string
		roi  float64
		want float64
	}{
		{"negative", -10, 0},
		{"at minimum", 15, 0},
		{"midpoint", 57.5, 0.5},
		{"at target", 100, 1},
		{"above target caps", 250, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, normalizeROI(tt.roi, c), 0.001)
		})
	}
}

func TestNormalizeRank(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	tests := []struct {
		name string
		rank *int
		want float64
	}{
		{"missing is worst", nil, 0},
		{"top seller", intp(500), 1.0},
		{"strong", intp(1500), 0.8},
		{"middling", intp(40000), 0.6},
		{"slow", intp(200000), 0.2},
		{"dead", intp(400000), 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, normalizeRank(tt.rank, cfg), 0.001)
		})
	}
}

func TestNormalizeCompetitors(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	tests := []struct {
		name  string
		count *int
		want  float64
	}{
		{"missing is neutral", nil, 0.5},
		{"no competitors suspicious", intp(0), 0.8},
		{"sweet spot", intp(2), 1.0},
		{"moderate", intp(5), 0.7},
		{"crowded", intp(12), 0.4},
		{"saturated", intp(40), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, normalizeCompetitors(tt.count, cfg.CompetitorBands), 0.001)
		})
	}
}

func TestNormalizeWeight(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.InDelta(t, 0.5, normalizeWeight(0, cfg.WeightBands), 0.001, "missing weight is neutral")
	assert.InDelta(t, 1.0, normalizeWeight(0.75, cfg.WeightBands), 0.001)
	assert.InDelta(t, 0.7, normalizeWeight(2.5, cfg.WeightBands), 0.001)
	assert.InDelta(t, 0.1, normalizeWeight(30, cfg.WeightBands), 0.001)
	assert.InDelta(t, 0, normalizeWeight(60, cfg.WeightBands), 0.001, "above heaviest band is zero")
}

func TestNormalizeTier(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.Equal(t, 1.0, normalizeTier(domain.TierSmallStandard, cfg))
	assert.Equal(t, 0.8, normalizeTier(domain.TierLargeStandard, cfg))
	assert.Equal(t, 0.1, normalizeTier(domain.TierExtraLarge150Plus, cfg))
	assert.Equal(t, 0.5, normalizeTier(domain.TierUnknown, cfg), "unknown tier is neutral")
}

func TestNormalizeTrend(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.Equal(t, 1.0, normalizeTrend(domain.TrendGrowing, cfg.TrendScores))
	assert.Equal(t, 0.6, normalizeTrend(domain.TrendStable, cfg.TrendScores))
	assert.Equal(t, 0.0, normalizeTrend(domain.TrendDeclining, cfg.TrendScores))
	assert.Equal(t, 0.5, normalizeTrend(domain.SalesTrend("sideways"), cfg.TrendScores))
	assert.Equal(t, 0.5, normalizeTrend(domain.SalesTrend(""), cfg.TrendScores))
}

func TestNormalizeVariations(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.Equal(t, 0.5, normalizeVariations(0, cfg.VariationBands), "missing count is neutral")
	assert.Equal(t, 1.0, normalizeVariations(1, cfg.VariationBands))
	assert.Equal(t, 0.6, normalizeVariations(4, cfg.VariationBands))
	assert.Equal(t, 0.0, normalizeVariations(35, cfg.VariationBands))
}

func TestNormalizeDelicacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating int
		want   float64
	}{
		{"most fragile", 1, 0},
		{"middle", 3, 0.5},
		{"sturdiest", 5, 1},
		{"below scale", 0, 0.5},
		{"above scale", 6, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, normalizeDelicacy(tt.rating, true), 0.001)
		})
	}

	// Inverted convention: 1 becomes the best rating.
	assert.InDelta(t, 1.0, normalizeDelicacy(1, false), 0.001)
	assert.InDelta(t, 0.0, normalizeDelicacy(5, false), 0.001)
}

func TestNormalizeVelocity(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.Equal(t, 0.0, normalizeVelocity(nil, cfg.VelocityBands), "absent estimate is worst, not neutral")
	assert.Equal(t, 0.1, normalizeVelocity(floatp(3), cfg.VelocityBands))
	assert.Equal(t, 0.45, normalizeVelocity(floatp(15), cfg.VelocityBands))
	assert.Equal(t, 0.75, normalizeVelocity(floatp(40), cfg.VelocityBands))
	assert.Equal(t, 1.0, normalizeVelocity(floatp(120), cfg.VelocityBands))
}

func TestNormalizeDaysToSell(t *testing.T) {
	t.Parallel()

	cfg := DefaultNormalizeConfig()

	assert.Equal(t, 0.5, normalizeDaysToSell(nil, cfg.DaysToSellBands), "absent estimate is neutral")
	assert.Equal(t, 1.0, normalizeDaysToSell(floatp(1), cfg.DaysToSellBands))
	assert.Equal(t, 0.4, normalizeDaysToSell(floatp(21), cfg.DaysToSellBands))
	assert.Equal(t, 0.0, normalizeDaysToSell(floatp(90), cfg.DaysToSellBands))
}

func TestNormalizeAmazonPresence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, normalizeAmazonPresence(true))
	assert.Equal(t, 1.0, normalizeAmazonPresence(false))
}

func TestNormalize_AllFactorsInRange(t *testing.T) {
	t.Parallel()

	in := &domain.ProductInputs{
		SellingPrice:   49.99,
		CostPrice:      15,
		UnitWeightLb:   0.75,
		RankProxy:      intp(1500),
		SalesTrend:     domain.TrendStable,
		DelicacyRating: 3,
		VariationCount: 1,
	}

	f := Normalize(in, domain.TierSmallStandard, 182.7, DefaultNormalizeConfig())

	for name, v := range map[string]float64{
		"roi": f.ROI, "rank": f.Rank, "competition": f.Competition,
		"weight": f.Weight, "size_tier": f.SizeTier, "trend": f.Trend,
		"variations": f.Variations, "seasonality": f.Seasonality,
		"delicacy": f.Delicacy, "velocity": f.Velocity,
		"days_to_sell": f.DaysToSell, "amazon_presence": f.AmazonPresence,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}
