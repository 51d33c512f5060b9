package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SpotPrices returns a timeseries panel charting the last polled price
// of each metal.
func SpotPrices() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Spot Prices").
		Description("USD per troy ounce from the spot monitor").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(16).
		WithTarget(Query(`bdesk_spot_price_usd`, "{{metal}}", "A")).
		Unit("currencyUSD").
		FillOpacity(0).
		LineWidth(2).
		Legend(TableLegend("last", "min", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SpotFallbacks returns a stat panel counting fallback responses in the
// past 24 hours.
func SpotFallbacks() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Fallback Prices (24h)").
		Description("Spot requests answered with static prices because the feed failed").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(`increase(bdesk_spot_fallback_total[24h])`, "", "A")).
		Thresholds(Steps("green", At(1, "yellow"), At(20, "red"))).
		ColorScheme(ByThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
