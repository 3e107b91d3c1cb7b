package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "arbiscout-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "arbiscout-recording",
					Rules: []Rule{
						{
							Record: "arbiscout:http_requests:rate5m",
							Expr:   `sum(rate(arbiscout_http_requests_total[5m]))`,
						},
						{
							Record: "arbiscout:http_errors:rate5m",
							Expr:   `sum(rate(arbiscout_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "arbiscout:evaluations:rate5m",
							Expr:   `rate(arbiscout_evaluations_total[5m])`,
						},
						{
							Record: "arbiscout:validation_failures:rate5m",
							Expr:   `rate(arbiscout_validation_failures_total[5m])`,
						},
						{
							Record: "arbiscout:deal_breakers:rate5m",
							Expr:   `rate(arbiscout_deal_breakers_total[5m])`,
						},
						{
							Record: "arbiscout:catalog_failures:rate5m",
							Expr:   `rate(arbiscout_catalog_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
