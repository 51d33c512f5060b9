// Package ebay provides eBay OAuth, Sell API, and Finding API clients
// abstracted behind interfaces for testability.
package ebay

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// ErrMissingCredentials is returned when a client id, secret, or RuName
// needed for a call is not configured.
var ErrMissingCredentials = errors.New("eBay credentials are not configured")

// APIError is a non-2xx response from an eBay REST endpoint.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eBay API error (status %d) from %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// StatusCode extracts the upstream HTTP status from err. It returns 200 for a
// nil error and 0 when the call never produced a response.
func StatusCode(err error) int {
	if err == nil {
		return 200
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var tokErr *TokenError
	if errors.As(err, &tokErr) {
		return tokErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err carries an upstream 401.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == 401
}

// TokenProvider defines the interface for obtaining application OAuth2
// tokens (client credentials grant).
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// UserAuth runs the authorization-code and refresh-token grants on behalf of
// a browser user. Tokens are returned to the caller and never stored.
type UserAuth interface {
	AuthorizeURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.OAuthToken, error)
}

// SoldSearcher searches completed (sold) listings.
type SoldSearcher interface {
	SearchCompleted(ctx context.Context, req SoldSearchRequest) (*SoldSearchResponse, error)
}

// SellAPI is the subset of the Sell and Commerce APIs the listings
// aggregator reads, all called with the user's bearer token.
type SellAPI interface {
	GetUser(ctx context.Context, token string) (*IdentityUser, error)
	ListInventoryItems(ctx context.Context, token string, limit, offset int) (*InventoryItemsPage, error)
	ListOffers(ctx context.Context, token, sku string) (*OffersPage, error)
	ListCampaigns(ctx context.Context, token string) (*CampaignsPage, error)
	ListAds(ctx context.Context, token, campaignID string) (*AdsPage, error)
	GetTrafficReport(ctx context.Context, token string, from, to time.Time) (*TrafficReport, error)
	ListOrders(ctx context.Context, token string, limit int) (*OrdersPage, error)
}
