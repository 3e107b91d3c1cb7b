package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogLookupRate returns a timeseries panel showing catalog lookups per
// second.
func CatalogLookupRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Lookup Rate").
		Description("Catalog API lookups per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(arbiscout_catalog_lookups_total{job="arbiscout"}[5m]))`,
			"lookups/s", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CatalogFailureRate returns a timeseries panel showing the catalog failure
// rate as a percentage of lookups.
func CatalogFailureRate() *timeseries.PanelBuilder {
	expr := `arbiscout:catalog_failures:rate5m / sum(rate(arbiscout_catalog_lookups_total{job="arbiscout"}[5m])) * 100`
	return timeseries.NewPanelBuilder().
		Title("Catalog Failure %").
		Description("Catalog lookup failures as percentage of lookups; not-found responses do not count").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(expr, "failure %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
