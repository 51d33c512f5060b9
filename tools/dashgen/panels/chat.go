package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ChatRequests returns a timeseries panel showing chat proxy requests by
// outcome.
func ChatRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Chat Requests").
		Description("Chat proxy requests per second by outcome").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(Query(
			`sum by (outcome) (rate(bdesk_chat_requests_total[5m]))`,
			"{{outcome}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ChatLatency returns a timeseries panel showing upstream model latency.
func ChatLatency() *timeseries.PanelBuilder {
	b := timeseries.NewPanelBuilder().
		Title("Upstream Latency").
		Description("Time spent waiting on the model provider").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth)

	for i, q := range []string{"0.50", "0.95"} {
		b = b.WithTarget(Query(
			fmt.Sprintf(`histogram_quantile(%s, sum(rate(bdesk_chat_upstream_duration_seconds_bucket{job=%q}[5m])) by (le))`, q, Job),
			"p"+q[2:],
			string(rune('A'+i)),
		))
	}

	return b.
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green", At(10, "yellow"), At(30, "red"))).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}
