package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EvaluationRate returns a timeseries panel showing evaluations per second.
func EvaluationRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Evaluation Rate").
		Description("Scoring evaluations per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`arbiscout:evaluations:rate5m`, "evals/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EvaluationLatency returns a timeseries panel showing p50 and p95
// evaluation latencies.
func EvaluationLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Evaluation Latency").
		Description("Scoring evaluation duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(arbiscout_evaluation_duration_seconds_bucket{job="arbiscout"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(arbiscout_evaluation_duration_seconds_bucket{job="arbiscout"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DealBreakerRate returns a timeseries panel showing the percentage of
// evaluations that tripped a deal breaker.
func DealBreakerRate() *timeseries.PanelBuilder {
	expr := `arbiscout:deal_breakers:rate5m / arbiscout:evaluations:rate5m * 100`
	return timeseries.NewPanelBuilder().
		Title("Deal Breaker Rate").
		Description("Percentage of evaluations with a deal breaker").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(expr, "deal breaker %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DegradedEvaluations returns a stat panel showing degraded evaluations in
// the past 24 hours. A degraded evaluation used a zero fallback after a rate
// table lookup missed.
func DegradedEvaluations() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Degraded Evaluations (24h)").
		Description("Evaluations that fell back to a zero fee component in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(arbiscout_degraded_evaluations_total{job="arbiscout"}[24h])`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ValidationFailures returns a stat panel showing rejected inputs in the
// past 24 hours.
func ValidationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Validation Failures (24h)").
		Description("Evaluation requests rejected on input validation in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(arbiscout_validation_failures_total{job="arbiscout"}[24h])`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// ScoreDistribution returns a bar gauge panel showing the distribution of
// computed opportunity scores across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description("Distribution of opportunity scores (1-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(arbiscout_score_distribution_bucket{job="arbiscout"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
