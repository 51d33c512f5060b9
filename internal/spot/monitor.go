package spot

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// Monitor polls a Fetcher on a fixed interval and exports the result as
// Prometheus gauges.
type Monitor struct {
	cron    *cron.Cron
	fetcher Fetcher
	timeout time.Duration
	last    atomic.Pointer[domain.SpotPrices]
	log     *slog.Logger
}

// NewMonitor creates a Monitor that polls fetcher every interval.
func NewMonitor(
	fetcher Fetcher,
	interval time.Duration,
	timeout time.Duration,
	log *slog.Logger,
) (*Monitor, error) {
	c := cron.New()

	m := &Monitor{
		cron:    c,
		fetcher: fetcher,
		timeout: timeout,
		log:     log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), m.Poll); err != nil {
		return nil, err
	}

	return m, nil
}

// Start begins polling.
func (m *Monitor) Start() {
	m.log.Info("spot monitor started")
	m.cron.Start()
}

// Stop stops polling, returning a context that is done once any running
// poll finishes.
func (m *Monitor) Stop() context.Context {
	m.log.Info("spot monitor stopping")
	return m.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (m *Monitor) Entries() []cron.Entry {
	return m.cron.Entries()
}

// Last returns the most recent snapshot, or nil before the first poll.
func (m *Monitor) Last() *domain.SpotPrices {
	return m.last.Load()
}

// Poll fetches one snapshot and records it.
func (m *Monitor) Poll() {
	ctx := context.Background()
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	prices := m.fetcher.Fetch(ctx)
	m.last.Store(&prices)

	for metal, price := range prices.ByMetal() {
		metrics.SpotPriceUSD.WithLabelValues(metal).Set(price)
	}

	if prices.IsFallback() {
		m.log.Warn("spot feed unavailable, serving fallback prices", "error", prices.Error)
		return
	}
	m.log.Debug(
		"spot prices refreshed",
		"source", prices.Source,
		"gold", prices.Gold,
		"silver", prices.Silver,
	)
}
