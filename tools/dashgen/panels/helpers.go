// Package panels builds the Grafana panels of the bullion-desk overview
// dashboard. Each exported constructor returns one panel; layout lives in
// the dashboards package.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
)

// Job is the Prometheus scrape job for the API server.
const Job = "bullion-desk"

// EbayDailyLimit mirrors the server's default ebay.rate_limit.daily_limit.
const EbayDailyLimit = 5000

// Grid sizes on Grafana's 24-column layout.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8

	FullWidth = 24
)

// Step is one threshold boundary: values at or above At take Color.
type Step struct {
	At    float64
	Color string
}

// At is shorthand for a Step.
func At(v float64, color string) Step {
	return Step{At: v, Color: color}
}

// Steps builds absolute thresholds starting from base below the first step.
func Steps(base string, steps ...Step) cog.Builder[dashboard.ThresholdsConfig] {
	out := make([]dashboard.Threshold, 0, len(steps)+1)
	out = append(out, dashboard.Threshold{Color: base})
	for _, s := range steps {
		out = append(out, dashboard.Threshold{Value: cog.ToPtr(s.At), Color: s.Color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(out)
}

// Datasource points a panel at the dashboard's ${datasource} variable.
func Datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// Query is a Prometheus target.
func Query(expr, legend, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legend).
		RefId(refID)
}

// ByThreshold colors values by their threshold step.
func ByThreshold() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdThresholds)
}

// Palette colors series from the classic palette.
func Palette() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// TableLegend shows a bottom legend table with the given reducers.
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip lists every series under the cursor, largest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
