package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// arbiscout operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "arbiscout-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "arbiscout-alerts",
					Rules: []Rule{
						{
							Alert: "ArbiscoutDown",
							Expr:  `absent(up{job="arbiscout"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Arbiscout is down",
								"description": "The arbiscout job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "ArbiscoutReadinessDown",
							Expr:  `arbiscout_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Arbiscout readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "ArbiscoutHighErrorRate",
							Expr:  `arbiscout:http_errors:rate5m / arbiscout:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Arbiscout",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "ArbiscoutDegradedEvaluations",
							Expr:  `increase(arbiscout_degraded_evaluations_total[1h]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Degraded evaluations detected",
								"description": "Evaluations are falling back to zero fee components. The rate table likely has gaps for in-use categories or size tiers.",
							},
						},
						{
							Alert: "ArbiscoutCatalogFailures",
							Expr:  `arbiscout:catalog_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog lookup failure rate is elevated",
								"description": "Catalog lookups are failing at more than 0.1/s for the last 5 minutes. Enrichment is degrading to caller inputs.",
							},
						},
						{
							Alert: "ArbiscoutRescoreErrors",
							Expr:  `increase(arbiscout_rescore_errors_total[6h]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Rescore sweep errors detected",
								"description": "One or more stored analyses failed to rescore in the last 6 hours.",
							},
						},
						{
							Alert: "ArbiscoutHighValidationFailureRate",
							Expr:  `arbiscout:validation_failures:rate5m / (arbiscout:evaluations:rate5m + arbiscout:validation_failures:rate5m) > 0.5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Most evaluation requests are being rejected",
								"description": "More than half of evaluation requests failed input validation over the last 10 minutes. A client is likely sending malformed inputs.",
							},
						},
						{
							Alert: "ArbiscoutNotificationFailures",
							Expr:  `increase(arbiscout_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more opportunity alerts (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
