// Package inventory aggregates a seller's eBay account into one view by
// fanning out to the Sell and Commerce APIs and merging what comes back.
package inventory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// Source names used as keys in Errors, APIStatus, and Raw.
const (
	SourceIdentity    = "identity"
	SourceInventory   = "inventory"
	SourceOffers      = "offers"
	SourceCampaigns   = "campaigns"
	SourceAds         = "ads"
	SourceAnalytics   = "analytics"
	SourceFulfillment = "fulfillment"
)

const (
	defaultOfferConcurrency = 4
	defaultOrderLimit       = 50

	// defaultMaxOfferLookups keeps the per-SKU offer fan-out inside one
	// request's write timeout at the default 5/s eBay rate.
	defaultMaxOfferLookups = 200
)

// ErrUnauthorized is returned when the inventory call rejects the user
// token, so the caller can prompt a refresh.
var ErrUnauthorized = errors.New("eBay rejected the access token")

// ListingsResult is the merged account view.
type ListingsResult struct {
	Username     string
	Listings     []domain.Listing
	SoldItems    []domain.SoldItem
	RecentOrders []domain.Order
	Raw          map[string]int
	Errors       map[string]string
	APIStatus    map[string]int
}

// EndpointError describes one failed upstream call.
type EndpointError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
	Body       string `json:"body,omitempty"`
}

// EndpointReport is the outcome of one diagnostic call.
type EndpointReport struct {
	Status int            `json:"status"`
	Count  int            `json:"count"`
	Sample any            `json:"sample,omitempty"`
	Error  *EndpointError `json:"error,omitempty"`
}

// StatusSummary counts endpoint outcomes.
type StatusSummary struct {
	OK     int `json:"ok"`
	Failed int `json:"failed"`
}

// StatusReport is the diagnostics snapshot.
type StatusReport struct {
	Timestamp    string                    `json:"timestamp"`
	TokenPresent bool                      `json:"tokenPresent"`
	Endpoints    map[string]EndpointReport `json:"endpoints"`
	Summary      StatusSummary             `json:"summary"`
}

// Service builds listing and diagnostic views for a user token.
type Service interface {
	Listings(ctx context.Context, token string) (*ListingsResult, error)
	Status(ctx context.Context, token string) *StatusReport
}

// Aggregator implements Service on top of an ebay.SellAPI.
type Aggregator struct {
	api              ebay.SellAPI
	paginator        *ebay.Paginator
	offerConcurrency int
	maxOfferLookups  int
	orderLimit       int
	nowFunc          func() time.Time
	log              *slog.Logger
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithMaxPages caps how many inventory pages are walked.
func WithMaxPages(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.paginator = ebay.NewPaginator(a.api, ebay.WithMaxPages(n), ebay.WithPaginatorLogger(a.log))
		}
	}
}

// WithOfferConcurrency bounds concurrent per-SKU offer lookups. Values
// below 1 keep the default.
func WithOfferConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.offerConcurrency = n
		}
	}
}

// WithMaxOfferLookups caps how many SKUs get an offer lookup per request.
// Every lookup waits on the shared eBay rate limiter and spends daily
// quota. SKUs past the cap are reported as a degraded offers source.
func WithMaxOfferLookups(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxOfferLookups = n
		}
	}
}

// WithOrderLimit sets how many recent orders are fetched.
func WithOrderLimit(n int) Option {
	return func(a *Aggregator) {
		a.orderLimit = n
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(a *Aggregator) {
		a.nowFunc = f
	}
}

// NewAggregator creates an Aggregator. Options are applied in order, so
// WithMaxPages sees the logger passed here.
func NewAggregator(api ebay.SellAPI, log *slog.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		api:              api,
		offerConcurrency: defaultOfferConcurrency,
		maxOfferLookups:  defaultMaxOfferLookups,
		orderLimit:       defaultOrderLimit,
		nowFunc:          time.Now,
		log:              log,
	}
	a.paginator = ebay.NewPaginator(api, ebay.WithPaginatorLogger(log))
	for _, opt := range opts {
		opt(a)
	}
	return a
}
