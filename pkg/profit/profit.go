// Package profit derives per-unit profitability from a selling price, a
// fee estimate, and the buyer's costs, plus an informational monthly
// storage-cost estimate.
package profit

import (
	"time"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// StorageRates holds monthly storage pricing per cubic foot, split by tier
// family and Q4 peak season.
type StorageRates struct {
	StandardPerCuFt     float64 `yaml:"standard_per_cuft"`
	StandardPeakPerCuFt float64 `yaml:"standard_peak_per_cuft"`
	OversizePerCuFt     float64 `yaml:"oversize_per_cuft"`
	OversizePeakPerCuFt float64 `yaml:"oversize_peak_per_cuft"`
}

// DefaultStorageRates returns estimated US storage rates.
func DefaultStorageRates() StorageRates {
	return StorageRates{
		StandardPerCuFt:     0.78,
		StandardPeakPerCuFt: 2.40,
		OversizePerCuFt:     0.56,
		OversizePeakPerCuFt: 1.40,
	}
}

// Compute derives net profit and ROI. costPrice>0 is enforced upstream by
// validation; the zero guard here is defensive only.
func Compute(in *domain.ProductInputs, totalFees float64) domain.ProfitabilityResult {
	net := in.SellingPrice - totalFees - in.CostPrice -
		in.AdvertisingCostPerUnit + in.SupplierRebatePerUnit

	var roi float64
	if in.CostPrice > 0 {
		roi = net / in.CostPrice * 100
	}

	return domain.ProfitabilityResult{
		NetProfitPerUnit: net,
		ROIPercent:       roi,
	}
}

// MonthlyStorageCost estimates one month of storage for a single unit.
// The month comes from the caller-supplied evaluation date, never from the
// system clock, so results stay deterministic. Display only: it feeds
// neither the score nor any warning.
func MonthlyStorageCost(dims domain.Dimensions, tier domain.SizeTier, month time.Month, rates StorageRates) float64 {
	vol := dims.VolumeCubicFeet()
	if vol <= 0 {
		return 0
	}

	peak := month >= time.October && month <= time.December

	var rate float64
	switch {
	case tier.IsOversize() && peak:
		rate = rates.OversizePeakPerCuFt
	case tier.IsOversize():
		rate = rates.OversizePerCuFt
	case peak:
		rate = rates.StandardPeakPerCuFt
	default:
		rate = rates.StandardPerCuFt
	}

	return vol * rate
}
