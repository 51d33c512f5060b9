// Package spot fetches precious-metal spot prices from a public feed and
// falls back to static values when the feed is unusable.
package spot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

const (
	defaultFeedURL     = "https://api.metals.live/v1/spot"
	defaultSourceLabel = "metals.live"
)

// Fallback prices per troy ounce in USD.
const (
	FallbackGold      = 2685.50
	FallbackSilver    = 30.25
	FallbackPlatinum  = 985.00
	FallbackPalladium = 945.00
)

var metals = []string{"gold", "silver", "platinum", "palladium"}

// Fetcher returns a spot price snapshot. It never fails: an unusable feed
// yields the fallback snapshot with Error set.
type Fetcher interface {
	Fetch(ctx context.Context) domain.SpotPrices
}

// Fallback returns the static snapshot annotated with cause.
func Fallback(cause error, now time.Time) domain.SpotPrices {
	s := domain.SpotPrices{
		Gold:      FallbackGold,
		Silver:    FallbackSilver,
		Platinum:  FallbackPlatinum,
		Palladium: FallbackPalladium,
		Source:    domain.SpotSourceFallback,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	if cause != nil {
		s.Error = cause.Error()
	}
	return s
}

// FeedClient implements Fetcher against a feed that returns a flat JSON
// array of single-key objects, e.g. [{"gold":2650.1},{"silver":30.2}].
type FeedClient struct {
	feedURL string
	label   string
	client  *http.Client
	nowFunc func() time.Time
}

// Option configures the FeedClient.
type Option func(*FeedClient)

// WithFeedURL overrides the default feed endpoint.
func WithFeedURL(u string) Option {
	return func(c *FeedClient) {
		c.feedURL = u
	}
}

// WithSourceLabel sets the Source reported for live snapshots.
func WithSourceLabel(label string) Option {
	return func(c *FeedClient) {
		c.label = label
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *FeedClient) {
		c.client = hc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *FeedClient) {
		c.nowFunc = f
	}
}

// NewFeedClient creates a new spot feed client.
func NewFeedClient(opts ...Option) *FeedClient {
	c := &FeedClient{
		feedURL: defaultFeedURL,
		label:   defaultSourceLabel,
		client:  &http.Client{Timeout: 10 * time.Second},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch implements Fetcher.
func (c *FeedClient) Fetch(ctx context.Context) domain.SpotPrices {
	prices, err := c.fetchLive(ctx)
	if err != nil {
		metrics.SpotFetchesTotal.WithLabelValues(domain.SpotSourceFallback).Inc()
		metrics.SpotFallbackTotal.Inc()
		return Fallback(err, c.nowFunc())
	}
	metrics.SpotFetchesTotal.WithLabelValues("live").Inc()
	return prices
}

func (c *FeedClient) fetchLive(ctx context.Context) (domain.SpotPrices, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, http.NoBody)
	if err != nil {
		return domain.SpotPrices{}, fmt.Errorf("creating spot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.SpotPrices{}, fmt.Errorf("fetching spot feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SpotPrices{}, fmt.Errorf("reading spot feed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.SpotPrices{}, fmt.Errorf("spot feed returned status %d", resp.StatusCode)
	}

	byMetal, err := ParseFeed(body)
	if err != nil {
		return domain.SpotPrices{}, err
	}

	return domain.SpotPrices{
		Gold:      byMetal["gold"],
		Silver:    byMetal["silver"],
		Platinum:  byMetal["platinum"],
		Palladium: byMetal["palladium"],
		Source:    c.label,
		Timestamp: c.nowFunc().UTC().Format(time.RFC3339),
	}, nil
}

// ParseFeed decodes the flat array feed into lowercase metal keys. Keys
// are matched case-insensitively; entries for other metals are ignored. It
// fails unless all four metals are present with positive prices.
func ParseFeed(body []byte) (map[string]float64, error) {
	var entries []map[string]any
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing spot feed: %w", err)
	}

	byMetal := make(map[string]float64, len(metals))
	for _, entry := range entries {
		for k, v := range entry {
			if f, ok := toFloat(v); ok {
				byMetal[strings.ToLower(strings.TrimSpace(k))] = f
			}
		}
	}

	var missing []string
	for _, m := range metals {
		if byMetal[m] <= 0 {
			missing = append(missing, m)
		}
	}
	if len(missing) > 0 {
		return nil, errors.New("spot feed missing prices for: " + strings.Join(missing, ", "))
	}

	out := make(map[string]float64, len(metals))
	for _, m := range metals {
		out[m] = byMetal[m]
	}
	return out, nil
}

// toFloat accepts JSON numbers and numeric strings. NaN and infinities
// are rejected since they cannot be encoded back to JSON.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(n), 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
