package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing the eBay API call rate
// split by endpoint.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Calls Rate").
		Description("eBay Sell and Finding API calls per second by endpoint").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(Query(`bdesk:ebay_api_calls:rate5m`, "{{endpoint}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APIErrors returns a timeseries panel showing failed eBay calls by
// endpoint, including quota rejections and network errors.
func APIErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Errors").
		Description("Non-2xx eBay responses per second by endpoint").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(Query(`bdesk:ebay_api_errors:rate5m`, "{{endpoint}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green", At(0.1, "yellow"), At(1, "red"))).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing the rolling 24h eBay API
// usage with a threshold line at the daily limit.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Limit").
		Description(fmt.Sprintf("Rolling 24h eBay API call count (limit: %d)", EbayDailyLimit)).
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(fmt.Sprintf(`bdesk_ebay_daily_usage{job=%q}`, Job), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(Steps("green", At(float64(EbayDailyLimit)*0.8, "yellow"), At(float64(EbayDailyLimit), "red"))).
		ColorScheme(ByThreshold()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel showing the number of daily limit hits
// in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the eBay daily limit was reached in the last 24 hours").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(fmt.Sprintf(`increase(bdesk_ebay_daily_limit_hits_total{job=%q}[24h])`, Job), "", "A")).
		Thresholds(Steps("green", At(1, "yellow"), At(3, "red"))).
		ColorScheme(ByThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// TokenExchanges returns a timeseries panel showing OAuth token exchanges
// by grant type and outcome.
func TokenExchanges() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Exchanges").
		Description("OAuth token requests by grant and outcome").
		Datasource(Datasource()).
		Height(TSHeight).
		Span(8).
		WithTarget(Query(
			`sum by (grant, outcome) (increase(bdesk_ebay_token_exchanges_total[1h]))`,
			"{{grant}} {{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(Steps("green")).
		ColorScheme(Palette()).
		DrawStyle(common.GraphDrawStyleBars)
}
