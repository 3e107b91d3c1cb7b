package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

func findWarning(ws []domain.Warning, metric string) (domain.Warning, bool) {
	for _, w := range ws {
		if w.Metric == metric {
			return w, true
		}
	}
	return domain.Warning{}, false
}

func TestWarnings_ROI(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	in := &domain.ProductInputs{RankProxy: intp(1000)}

	tests := []struct {
		name string
		prof domain.ProfitabilityResult
		want domain.WarningLevel
	}{
		{"negative profit is critical", domain.ProfitabilityResult{NetProfitPerUnit: -5.59, ROIPercent: -11.6}, domain.LevelCritical},
		{"below floor is critical", domain.ProfitabilityResult{NetProfitPerUnit: 1, ROIPercent: 7}, domain.LevelCritical},
		{"below target is warning", domain.ProfitabilityResult{NetProfitPerUnit: 2, ROIPercent: 15}, domain.LevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierSmallStandard}, tt.prof, th)
			w, ok := findWarning(ws, "roi")
			require.True(t, ok)
			assert.Equal(t, tt.want, w.Level)
		})
	}

	t.Run("healthy roi is silent", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierSmallStandard},
			domain.ProfitabilityResult{NetProfitPerUnit: 27, ROIPercent: 182}, th)
		_, ok := findWarning(ws, "roi")
		assert.False(t, ok)
	})
}

func TestWarnings_Rank(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	healthy := domain.ProfitabilityResult{NetProfitPerUnit: 20, ROIPercent: 100}
	fees := domain.FeeBreakdown{SizeTier: domain.TierSmallStandard}

	tests := []struct {
		name string
		rank *int
		want domain.WarningLevel
	}{
		{"missing rank warns", nil, domain.LevelWarning},
		{"slow rank warns", intp(150000), domain.LevelWarning},
		{"dead rank is critical", intp(300000), domain.LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ws := Warnings(&domain.ProductInputs{RankProxy: tt.rank}, fees, healthy, th)
			w, ok := findWarning(ws, "rank_proxy")
			require.True(t, ok)
			assert.Equal(t, tt.want, w.Level)
		})
	}
}

func TestWarnings_CompetitorsWeightVariations(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	healthy := domain.ProfitabilityResult{NetProfitPerUnit: 20, ROIPercent: 100}
	fees := domain.FeeBreakdown{SizeTier: domain.TierSmallStandard}

	t.Run("crowded listing warns, saturated is critical", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(&domain.ProductInputs{RankProxy: intp(1000), CompetitorCount: intp(20)}, fees, healthy, th)
		w, ok := findWarning(ws, "competitor_count")
		require.True(t, ok)
		assert.Equal(t, domain.LevelWarning, w.Level)

		ws = Warnings(&domain.ProductInputs{RankProxy: intp(1000), CompetitorCount: intp(45)}, fees, healthy, th)
		w, _ = findWarning(ws, "competitor_count")
		assert.Equal(t, domain.LevelCritical, w.Level)
	})

	t.Run("heavy item warns, over ceiling is critical", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(&domain.ProductInputs{RankProxy: intp(1000), UnitWeightLb: 25}, fees, healthy, th)
		w, ok := findWarning(ws, "unit_weight_lb")
		require.True(t, ok)
		assert.Equal(t, domain.LevelWarning, w.Level)

		ws = Warnings(&domain.ProductInputs{RankProxy: intp(1000), UnitWeightLb: 60}, fees, healthy, th)
		w, _ = findWarning(ws, "unit_weight_lb")
		assert.Equal(t, domain.LevelCritical, w.Level)
	})

	t.Run("variation sprawl", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(&domain.ProductInputs{RankProxy: intp(1000), VariationCount: 12}, fees, healthy, th)
		w, ok := findWarning(ws, "variation_count")
		require.True(t, ok)
		assert.Equal(t, domain.LevelWarning, w.Level)

		ws = Warnings(&domain.ProductInputs{RankProxy: intp(1000), VariationCount: 25}, fees, healthy, th)
		w, _ = findWarning(ws, "variation_count")
		assert.Equal(t, domain.LevelCritical, w.Level)
	})
}

func TestWarnings_SizeTierAndDegraded(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	healthy := domain.ProfitabilityResult{NetProfitPerUnit: 20, ROIPercent: 100}
	in := &domain.ProductInputs{RankProxy: intp(1000)}

	t.Run("unknown tier is critical", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierUnknown, Degraded: true}, healthy, th)
		w, ok := findWarning(ws, "size_tier")
		require.True(t, ok)
		assert.Equal(t, domain.LevelCritical, w.Level)
	})

	t.Run("oversize tier warns", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierLargeBulky}, healthy, th)
		w, ok := findWarning(ws, "size_tier")
		require.True(t, ok)
		assert.Equal(t, domain.LevelWarning, w.Level)
	})

	t.Run("degraded fee lookup is critical", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierLargeBulky, Degraded: true}, healthy, th)
		w, ok := findWarning(ws, "fees")
		require.True(t, ok)
		assert.Equal(t, domain.LevelCritical, w.Level)
	})

	t.Run("standard tier is silent", func(t *testing.T) {
		t.Parallel()
		ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierLargeStandard}, healthy, th)
		_, ok := findWarning(ws, "size_tier")
		assert.False(t, ok)
	})
}

func TestWarnings_Flags(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	healthy := domain.ProfitabilityResult{NetProfitPerUnit: 20, ROIPercent: 100}
	fees := domain.FeeBreakdown{SizeTier: domain.TierSmallStandard}

	in := &domain.ProductInputs{
		RankProxy:              intp(1000),
		AmazonIsSeller:         true,
		IsDangerousGood:        true,
		IsSeasonal:             true,
		InboundPlacement:       domain.PlacementPartial,
		AdvertisingCostPerUnit: 1.50,
		SupplierRebatePerUnit:  0.75,
	}

	ws := Warnings(in, fees, healthy, th)

	for metric, want := range map[string]domain.WarningLevel{
		"amazon_is_seller":          domain.LevelWarning,
		"is_dangerous_good":         domain.LevelWarning,
		"is_seasonal":               domain.LevelInfo,
		"inbound_placement":         domain.LevelInfo,
		"advertising_cost_per_unit": domain.LevelInfo,
		"supplier_rebate_per_unit":  domain.LevelInfo,
	} {
		w, ok := findWarning(ws, metric)
		require.True(t, ok, metric)
		assert.Equal(t, want, w.Level, metric)
	}
}

func TestWarnings_CleanInputsProduceNone(t *testing.T) {
	t.Parallel()

	in := &domain.ProductInputs{
		RankProxy:        intp(1500),
		CompetitorCount:  intp(4),
		UnitWeightLb:     0.75,
		InboundPlacement: domain.PlacementOptimized,
	}
	ws := Warnings(in, domain.FeeBreakdown{SizeTier: domain.TierSmallStandard},
		domain.ProfitabilityResult{NetProfitPerUnit: 27.41, ROIPercent: 182.7}, DefaultThresholds())

	assert.Empty(t, ws)
}
