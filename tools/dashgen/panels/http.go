package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Rate").
		Description("HTTP requests per second").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(`bdesk:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := timeseries.NewPanelBuilder().
		Title("Latency Percentiles").
		Description("HTTP request duration percentiles").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8)

	for i, q := range []string{"0.50", "0.95", "0.99"} {
		b = b.WithTarget(Query(
			fmt.Sprintf(`histogram_quantile(%s, sum(rate(bdesk_http_request_duration_seconds_bucket{job=%q}[5m])) by (le))`, q, Job),
			"p"+q[2:],
			string(rune('A'+i)),
		))
	}

	return b.
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Error Rate %").
		Description("HTTP 5xx error rate as percentage of total requests").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(
			`bdesk:http_errors:rate5m / bdesk:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(Steps("green", At(1, "yellow"), At(5, "red"))).
		ColorScheme(ByThreshold()).
		DrawStyle(common.GraphDrawStyleLine)
}
