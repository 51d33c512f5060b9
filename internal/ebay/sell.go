package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
)

const (
	defaultAPIBaseURL  = "https://api.ebay.com"
	defaultIdentityURL = "https://apiz.ebay.com/commerce/identity/v1/user/"
	defaultMarketplace = "EBAY_US"
)

// SellClient implements SellAPI over the eBay Sell and Commerce REST APIs.
// Every method takes the caller's user token; the client holds none.
type SellClient struct {
	baseURL     string
	identityURL string
	marketplace string
	client      *http.Client
	rateLimiter *RateLimiter
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithAPIBaseURL overrides the REST API host, e.g. to point at a mock server.
func WithAPIBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = u
	}
}

// WithIdentityURL overrides the Commerce Identity getUser endpoint.
func WithIdentityURL(u string) SellOption {
	return func(c *SellClient) {
		c.identityURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that every call waits on first.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// NewSellClient creates a new Sell API client.
func NewSellClient(opts ...SellOption) *SellClient {
	c := &SellClient{
		baseURL:     defaultAPIBaseURL,
		identityURL: defaultIdentityURL,
		marketplace: defaultMarketplace,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUser returns the account behind token.
func (c *SellClient) GetUser(ctx context.Context, token string) (*IdentityUser, error) {
	var user IdentityUser
	if err := c.getJSON(ctx, "identity", token, c.identityURL, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// getJSON issues an authenticated GET and decodes a 200 response into out.
// Non-2xx responses become *APIError.
func (c *SellClient) getJSON(ctx context.Context, endpoint, token, rawURL string, out any) error {
	if err := c.rateLimiter.acquire(ctx, endpoint); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", endpoint, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.EbayAPICallsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.EbayAPICallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// 204 from getOffers and friends means "nothing here".
	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	return nil
}

func (c *SellClient) endpointURL(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
