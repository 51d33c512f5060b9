package main

import "errors"

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

// KnownMetrics is the set of metric names exported by bullion-desk plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"bdesk_http_request_duration_seconds": true,
	"bdesk_http_requests_total":           true,

	// Health metrics.
	"bdesk_healthz_up": true,
	"bdesk_readyz_up":  true,

	// eBay API metrics.
	"bdesk_ebay_api_calls_total":        true,
	"bdesk_ebay_daily_usage":            true,
	"bdesk_ebay_daily_limit_hits_total": true,
	"bdesk_ebay_token_exchanges_total":  true,

	// Aggregation metrics.
	"bdesk_aggregation_duration_seconds":      true,
	"bdesk_aggregation_source_failures_total": true,

	// Chat proxy metrics.
	"bdesk_chat_requests_total":           true,
	"bdesk_chat_upstream_duration_seconds": true,

	// Spot metrics.
	"bdesk_spot_price_usd":      true,
	"bdesk_spot_fetches_total":  true,
	"bdesk_spot_fallback_total": true,

	// Recording rules.
	"bdesk:http_requests:rate5m":        true,
	"bdesk:http_errors:rate5m":          true,
	"bdesk:ebay_api_calls:rate5m":       true,
	"bdesk:ebay_api_errors:rate5m":      true,
	"bdesk:chat_requests:rate5m":        true,
	"bdesk:chat_upstream_errors:rate5m": true,
	"bdesk:spot_fallback:rate5m":        true,

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
