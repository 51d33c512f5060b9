package ebay

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const (
	trafficReportPath = "/sell/analytics/v1/traffic_report"

	// TrafficWindow is how far back the listings traffic report looks.
	TrafficWindow = 30 * 24 * time.Hour

	trafficMetrics = "LISTING_IMPRESSION_TOTAL,LISTING_VIEWS_TOTAL,TRANSACTION"
	reportDate     = "20060102"
)

// GetTrafficReport returns per-listing traffic between from and to.
func (c *SellClient) GetTrafficReport(
	ctx context.Context,
	token string,
	from, to time.Time,
) (*TrafficReport, error) {
	params := url.Values{}
	params.Set("dimension", "LISTING")
	params.Set("metric", trafficMetrics)
	params.Set("filter", fmt.Sprintf(
		"marketplace_ids:{%s},date_range:[%s..%s]",
		c.marketplace,
		from.UTC().Format(reportDate),
		to.UTC().Format(reportDate),
	))

	var report TrafficReport
	if err := c.getJSON(ctx, "analytics", token, c.endpointURL(trafficReportPath, params), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListingTitles maps listing id to title from the report's dimension
// metadata. Records without a title are omitted.
func (r *TrafficReport) ListingTitles() map[string]string {
	titles := make(map[string]string)
	for _, dm := range r.DimensionMetadata {
		for _, rec := range dm.MetadataRecords {
			id := rec.Value.String()
			if id == "" || len(rec.MetadataValues) == 0 {
				continue
			}
			if title := rec.MetadataValues[0].String(); title != "" {
				titles[id] = title
			}
		}
	}
	return titles
}

// ListingIDs returns the listing ids in record order, without duplicates.
func (r *TrafficReport) ListingIDs() []string {
	seen := make(map[string]bool, len(r.Records))
	ids := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		if len(rec.DimensionValues) == 0 {
			continue
		}
		id := rec.DimensionValues[0].String()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
