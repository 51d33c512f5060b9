package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AggregationDuration returns a timeseries panel showing p95 fan-out
// duration for the listings aggregator and the status probe.
func AggregationDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Aggregation Duration p95").
		Description("Time to merge every seller source, by request kind").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(Query(
			fmt.Sprintf(`histogram_quantile(0.95, sum by (le, kind) (rate(bdesk_aggregation_duration_seconds_bucket{job=%q}[5m])))`, Job),
			"{{kind}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SourceFailures returns a timeseries panel showing degraded sources.
func SourceFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Failures").
		Description("Seller sources that failed during aggregation, per hour").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(Query(
			`sum by (source) (increase(bdesk_aggregation_source_failures_total[1h]))`,
			"{{source}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green", At(1, "yellow"), At(10, "red"))).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleBars)
}
