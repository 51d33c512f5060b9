package client

import (
	"context"

	"github.com/donaldgifford/bullion-desk/internal/inventory"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// ListingsResponse is the aggregated seller view.
type ListingsResponse struct {
	Success      bool              `json:"success"`
	Username     string            `json:"username"`
	Listings     []domain.Listing  `json:"listings"`
	SoldItems    []domain.SoldItem `json:"soldItems"`
	RecentOrders []domain.Order    `json:"recentOrders"`
	Raw          map[string]int    `json:"raw"`
	Errors       map[string]string `json:"errors"`
	APIStatus    map[string]int    `json:"apiStatus"`
}

// StatusResponse is the eBay connectivity report.
type StatusResponse struct {
	inventory.StatusReport
	Error string `json:"error,omitempty"`
}

// RefreshResponse carries a newly minted access token.
type RefreshResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenTime    int64  `json:"token_time"`
}

// Listings returns the seller's merged listings, sold items, and orders.
// Requires WithToken.
func (c *Client) Listings(ctx context.Context) (*ListingsResponse, error) {
	var resp ListingsResponse
	if err := c.get(ctx, "/api/ebay/listings", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status probes each eBay endpoint with the configured token.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get(ctx, "/api/ebay/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var resp RefreshResponse
	if err := c.post(ctx, "/api/ebay/refresh", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
