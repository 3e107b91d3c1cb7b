package main

import "errors"

// KnownMetrics is the set of metric names exported by arbiscout plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"arbiscout_http_request_duration_seconds": true,
	"arbiscout_http_requests_total":           true,

	// Health metrics.
	"arbiscout_healthz_up": true,
	"arbiscout_readyz_up":  true,

	// Evaluation metrics.
	"arbiscout_evaluations_total":           true,
	"arbiscout_evaluation_duration_seconds": true,
	"arbiscout_validation_failures_total":   true,
	"arbiscout_deal_breakers_total":         true,
	"arbiscout_degraded_evaluations_total":  true,
	"arbiscout_score_distribution":          true,

	// Catalog metrics.
	"arbiscout_catalog_lookups_total":  true,
	"arbiscout_catalog_failures_total": true,

	// Persistence and rescore metrics.
	"arbiscout_analyses_saved_total":     true,
	"arbiscout_rescore_duration_seconds": true,
	"arbiscout_rescore_errors_total":     true,

	// Notification metrics.
	"arbiscout_alerts_sent_total":           true,
	"arbiscout_notification_failures_total": true,

	// Recording rules.
	"arbiscout:http_requests:rate5m":       true,
	"arbiscout:http_errors:rate5m":         true,
	"arbiscout:evaluations:rate5m":         true,
	"arbiscout:validation_failures:rate5m": true,
	"arbiscout:deal_breakers:rate5m":       true,
	"arbiscout:catalog_failures:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
