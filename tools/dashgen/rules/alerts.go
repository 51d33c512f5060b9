package rules

// AlertRules returns the operational alerts for the API server. Every
// ratio reads the recording rules so both stay consistent.
func AlertRules() PrometheusRule {
	return newPrometheusRule("bdesk-alerts", RuleGroup{
		Name: "bdesk-alerts",
		Rules: []Rule{
			alert("BdeskDown",
				`absent(up{job="bullion-desk"})`, "2m", "critical",
				"Bullion Desk is down",
				"The bullion-desk job has been absent for more than 2 minutes."),
			alert("BdeskReadinessDown",
				`bdesk_readyz_up == 0`, "2m", "critical",
				"Bullion Desk readiness check is failing",
				"Credentials are missing or the eBay quota is exhausted."),
			alert("BdeskHighErrorRate",
				`bdesk:http_errors:rate5m / bdesk:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on Bullion Desk",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("BdeskEbayErrors",
				`sum(bdesk:ebay_api_errors:rate5m) / sum(bdesk:ebay_api_calls:rate5m) > 0.25`, "10m", "warning",
				"eBay API calls are failing",
				"More than a quarter of eBay calls have failed for 10 minutes. Check scopes and token health."),
			alert("BdeskChatUpstreamErrors",
				`bdesk:chat_upstream_errors:rate5m > 0`, "5m", "warning",
				"Chat provider errors detected",
				"The chat proxy has been receiving upstream or network errors for more than 5 minutes."),
			alert("BdeskSpotFallback",
				`bdesk:spot_fallback:rate5m > 0`, "30m", "info",
				"Spot feed unavailable",
				"Spot prices have been served from static fallback values for 30 minutes."),
			alert("BdeskEbayQuotaHigh",
				`bdesk_ebay_daily_usage > 4000`, "5m", "warning",
				"eBay API daily usage is above 80% of the quota",
				"Daily eBay API usage has exceeded 4000 calls (limit is 5000)."),
			alert("BdeskEbayLimitReached",
				`increase(bdesk_ebay_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
				"eBay API daily limit has been reached",
				"The daily eBay quota has been exhausted. Sold searches return 429 until reset."),
		},
	})
}
