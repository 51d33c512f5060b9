// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/bullion-desk/tools/dashgen/panels"
)

// BuildOverview constructs the Bullion Desk Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Bullion Desk Overview").
		Uid("bdesk-overview").
		Tags([]string{"bdesk", "bullion-desk"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrors()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.TokenExchanges()))

	// Row 4: Aggregation.
	b.WithRow(dashboard.NewRowBuilder("Aggregation").
		WithPanel(panels.AggregationDuration()).
		WithPanel(panels.SourceFailures()))

	// Row 5: Chat.
	b.WithRow(dashboard.NewRowBuilder("Chat").
		WithPanel(panels.ChatRequests()).
		WithPanel(panels.ChatLatency()))

	// Row 6: Spot.
	b.WithRow(dashboard.NewRowBuilder("Spot").
		WithPanel(panels.SpotPrices()).
		WithPanel(panels.SpotFallbacks()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
