package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// upStat renders a 0/1 up gauge as a red or green tile.
func upStat(title, metric, description string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(metric, "", "A")).
		Thresholds(Steps("red", At(1, "green"))).
		ColorScheme(ByThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows whether the process answers /healthz.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", `bdesk_healthz_up`, "1 while the process is serving")
}

// ReadyzStat shows whether credentials are set and eBay quota remains.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", `bdesk_readyz_up`, "1 when credentials are configured and eBay quota remains")
}

// QuotaGauge shows the share of the daily eBay budget already spent by
// listings, diagnostics, and sold searches.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description(fmt.Sprintf("Calls in the rolling 24h window against the %d call budget", EbayDailyLimit)).
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(fmt.Sprintf("bdesk_ebay_daily_usage / %d * 100", EbayDailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(Steps("green", At(80, "yellow"), At(95, "red"))).
		ColorScheme(ByThreshold())
}

// UptimeStat shows time since the server process started.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since the bullion-desk process started").
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job), "", "A")).
		Unit("s").
		Thresholds(Steps("green")).
		ColorScheme(ByThreshold()).
		GraphMode(common.BigValueGraphModeNone)
}
