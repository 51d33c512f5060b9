package rules

// RecordingRules returns the pre-computed rates that the overview dashboard
// and the alert rules read instead of raw counters.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("bdesk-recording-rules", RuleGroup{
		Name: "bdesk-recording",
		Rules: []Rule{
			{
				Record: "bdesk:http_requests:rate5m",
				Expr:   `sum(rate(bdesk_http_requests_total[5m]))`,
			},
			{
				Record: "bdesk:http_errors:rate5m",
				Expr:   `sum(rate(bdesk_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "bdesk:ebay_api_calls:rate5m",
				Expr:   `sum by (endpoint) (rate(bdesk_ebay_api_calls_total[5m]))`,
			},
			{
				Record: "bdesk:ebay_api_errors:rate5m",
				Expr:   `sum by (endpoint) (rate(bdesk_ebay_api_calls_total{status!~"2.."}[5m]))`,
			},
			{
				Record: "bdesk:chat_requests:rate5m",
				Expr:   `sum(rate(bdesk_chat_requests_total[5m]))`,
			},
			{
				Record: "bdesk:chat_upstream_errors:rate5m",
				Expr:   `sum(rate(bdesk_chat_requests_total{outcome=~"network_error|upstream_error"}[5m]))`,
			},
			{
				Record: "bdesk:spot_fallback:rate5m",
				Expr:   `rate(bdesk_spot_fallback_total[5m])`,
			},
		},
	})
}
