package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arbiscout/arbiscout/tools/dashgen/dashboards"
	"github.com/arbiscout/arbiscout/tools/dashgen/rules"
	"github.com/arbiscout/arbiscout/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "arbiscout-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Arbiscout Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 6 rows.
	assert.Len(t, dash.Panels, 6)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestValidate_RejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	// With an empty known set, every query should fail metric resolution.
	result := validate.Dashboard(dash, map[string]bool{})
	assert.False(t, result.Ok())
	assert.NotEmpty(t, result.Errors)
	for _, e := range result.Errors {
		assert.Contains(t, e, "unknown metric")
	}
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "arbiscout-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "arbiscout-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"arbiscout:http_requests:rate5m",
		"arbiscout:http_errors:rate5m",
		"arbiscout:evaluations:rate5m",
		"arbiscout:validation_failures:rate5m",
		"arbiscout:deal_breakers:rate5m",
		"arbiscout:catalog_failures:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
		assert.True(t, KnownMetrics[rule.Record],
			"recording rule %s missing from KnownMetrics", rule.Record)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "arbiscout-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "arbiscout-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"ArbiscoutDown",
		"ArbiscoutReadinessDown",
		"ArbiscoutHighErrorRate",
		"ArbiscoutDegradedEvaluations",
		"ArbiscoutCatalogFailures",
		"ArbiscoutRescoreErrors",
		"ArbiscoutHighValidationFailureRate",
		"ArbiscoutNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	cfg := Config{OutputDir: out, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	// Dashboard JSON parses and carries the expected UID.
	dashPath := filepath.Join(out, "grafana", "data", "arbiscout-overview.json")
	dashData, err := os.ReadFile(dashPath) //nolint:gosec
	require.NoError(t, err)

	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashData, &dash))
	assert.Equal(t, "arbiscout-overview", dash["uid"])

	// Rule files carry the generated header and parse as YAML.
	for _, name := range []string{"arbiscout-recording-rules.yaml", "arbiscout-alerts.yaml"} {
		path := filepath.Join(out, "prometheus", name)
		data, err := os.ReadFile(path) //nolint:gosec
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader),
			"%s missing generated header", name)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr))
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	cfg := Config{OutputDir: out, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
