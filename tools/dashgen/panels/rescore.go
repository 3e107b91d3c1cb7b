package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RescoreSweepDuration returns a timeseries panel showing the p95 rescore
// sweep duration.
func RescoreSweepDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rescore Sweep Duration (p95)").
		Description("95th percentile rescore sweep duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(arbiscout_rescore_duration_seconds_bucket{job="arbiscout"}[1h])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RescoreErrors returns a stat panel showing failed rescores in the past
// 24 hours.
func RescoreErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Rescore Errors (24h)").
		Description("Analyses that failed to rescore in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(arbiscout_rescore_errors_total{job="arbiscout"}[24h])`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
