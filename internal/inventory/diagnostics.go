package inventory

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	"github.com/donaldgifford/bullion-desk/internal/metrics"
)

const (
	diagnosticsPageSize = 5
	maxErrorBody        = 512
)

// Status calls each endpoint once and reports status, count, and a sample
// of the first record. It never fails; every problem is captured per
// endpoint.
func (a *Aggregator) Status(ctx context.Context, token string) *StatusReport {
	start := time.Now()
	defer func() {
		metrics.AggregationDuration.WithLabelValues("status").Observe(time.Since(start).Seconds())
	}()

	report := &StatusReport{
		Timestamp:    a.nowFunc().UTC().Format(time.RFC3339),
		TokenPresent: token != "",
		Endpoints:    make(map[string]EndpointReport),
	}
	if token == "" {
		return report
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	record := func(name string, r EndpointReport) {
		mu.Lock()
		defer mu.Unlock()
		report.Endpoints[name] = r
	}

	g.Go(func() error {
		user, err := a.api.GetUser(ctx, token)
		if err != nil {
			record(SourceIdentity, failed(err))
			return nil
		}
		record(SourceIdentity, EndpointReport{Status: 200, Count: 1, Sample: user})
		return nil
	})

	g.Go(func() error {
		page, err := a.api.ListInventoryItems(ctx, token, diagnosticsPageSize, 0)
		if err != nil {
			record(SourceInventory, failed(err))
			record(SourceOffers, failed(errors.New("skipped: inventory unavailable")))
			return nil
		}
		r := EndpointReport{Status: 200, Count: page.Total}
		if len(page.InventoryItems) > 0 {
			r.Sample = page.InventoryItems[0]
		}
		record(SourceInventory, r)

		if len(page.InventoryItems) == 0 {
			record(SourceOffers, EndpointReport{Status: 200})
			return nil
		}
		offers, err := a.api.ListOffers(ctx, token, page.InventoryItems[0].SKU)
		if err != nil {
			record(SourceOffers, failed(err))
			return nil
		}
		r = EndpointReport{Status: 200, Count: len(offers.Offers)}
		if len(offers.Offers) > 0 {
			r.Sample = offers.Offers[0]
		}
		record(SourceOffers, r)
		return nil
	})

	g.Go(func() error {
		campaigns, err := a.api.ListCampaigns(ctx, token)
		if err != nil {
			record(SourceCampaigns, failed(err))
			return nil
		}
		r := EndpointReport{Status: 200, Count: len(campaigns.Campaigns)}
		if len(campaigns.Campaigns) > 0 {
			r.Sample = campaigns.Campaigns[0]
		}
		record(SourceCampaigns, r)
		return nil
	})

	g.Go(func() error {
		to := a.nowFunc()
		traffic, err := a.api.GetTrafficReport(ctx, token, to.Add(-ebay.TrafficWindow), to)
		if err != nil {
			record(SourceAnalytics, failed(err))
			return nil
		}
		r := EndpointReport{Status: 200, Count: len(traffic.Records)}
		if len(traffic.Records) > 0 {
			r.Sample = traffic.Records[0]
		}
		record(SourceAnalytics, r)
		return nil
	})

	g.Go(func() error {
		orders, err := a.api.ListOrders(ctx, token, diagnosticsPageSize)
		if err != nil {
			record(SourceFulfillment, failed(err))
			return nil
		}
		r := EndpointReport{Status: 200, Count: orders.Total}
		if len(orders.Orders) > 0 {
			r.Sample = orders.Orders[0]
		}
		record(SourceFulfillment, r)
		return nil
	})

	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	for name, r := range report.Endpoints {
		if r.Error != nil {
			report.Summary.Failed++
			a.log.Debug("diagnostic endpoint failed", "endpoint", name, "status", r.Status, "error", r.Error.Message)
			continue
		}
		report.Summary.OK++
	}

	return report
}

func failed(err error) EndpointReport {
	e := &EndpointError{Message: err.Error()}
	status := ebay.StatusCode(err)

	var apiErr *ebay.APIError
	if errors.As(err, &apiErr) {
		e.Message = "eBay API error"
		e.StatusCode = apiErr.StatusCode
		e.Body = truncate(apiErr.Body, maxErrorBody)
	}

	return EndpointReport{Status: status, Error: e}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
