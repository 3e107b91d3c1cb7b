// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/arbiscout/arbiscout/tools/dashgen/panels"
)

// BuildOverview constructs the Arbiscout Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Arbiscout Overview").
		Uid("arbiscout-overview").
		Tags([]string{"arbiscout"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.AnalysesSaved()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.EvaluationRate()).
		WithPanel(panels.EvaluationLatency()).
		WithPanel(panels.DealBreakerRate()).
		WithPanel(panels.DegradedEvaluations()).
		WithPanel(panels.ValidationFailures()).
		WithPanel(panels.ScoreDistribution()))

	// Row 4: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.CatalogLookupRate()).
		WithPanel(panels.CatalogFailureRate()))

	// Row 5: Rescore.
	b.WithRow(dashboard.NewRowBuilder("Rescore").
		WithPanel(panels.RescoreSweepDuration()).
		WithPanel(panels.RescoreErrors()))

	// Row 6: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
