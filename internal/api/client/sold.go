package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// SoldParams defines the filters for a sold-listings search.
type SoldParams struct {
	Query      string
	MinPrice   float64
	MaxPrice   float64
	Condition  string
	CategoryID string
	Days       int
	Limit      int
}

// SoldResponse is the result of a sold-listings search.
type SoldResponse struct {
	Success           bool                 `json:"success"`
	Query             string               `json:"query"`
	Stats             domain.PriceStats    `json:"stats"`
	PriceDistribution []domain.PriceBucket `json:"priceDistribution"`
	Items             []domain.SoldItem    `json:"items"`
	Total             int                  `json:"total"`
	SearchParams      struct {
		MinPrice   *float64 `json:"minPrice,omitempty"`
		MaxPrice   *float64 `json:"maxPrice,omitempty"`
		Condition  string   `json:"condition,omitempty"`
		CategoryID string   `json:"categoryId,omitempty"`
		Days       int      `json:"days"`
		Limit      int      `json:"limit"`
	} `json:"searchParams"`
}

// SearchSold searches completed sales matching params.
func (c *Client) SearchSold(ctx context.Context, params *SoldParams) (*SoldResponse, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Condition != "" {
		q.Set("condition", params.Condition)
	}
	if params.CategoryID != "" {
		q.Set("category_id", params.CategoryID)
	}
	if params.Days > 0 {
		q.Set("days", strconv.Itoa(params.Days))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var resp SoldResponse
	if err := c.get(ctx, "/api/sold-listings?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
