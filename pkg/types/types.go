// Package domain defines the core business types for bullion-desk.
package domain

import (
	"time"
)

// ListingSource tags which marketplace API a merged listing was first seen in.
type ListingSource string

// Listing source constants, in merge precedence order.
const (
	SourceInventoryAPI ListingSource = "inventory_api"
	SourceAnalytics    ListingSource = "analytics"
	SourceMarketing    ListingSource = "marketing"
)

// SoldSource tags where a sold item came from.
type SoldSource string

// Sold item source constants.
const (
	SoldFromCompletedSearch SoldSource = "completed_search"
	SoldFromFulfillment     SoldSource = "fulfillment"
)

// Listing is a single active marketplace offer, deduplicated by ID across
// the inventory, analytics, and marketing sources.
type Listing struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Price    float64       `json:"price"`
	Currency string        `json:"currency"`
	Status   string        `json:"status"`
	Quantity int           `json:"quantity"`
	SKU      string        `json:"sku,omitempty"`
	Source   ListingSource `json:"source"`
}

// SoldItem is a completed sale, either from the completed-items search or
// derived from a fulfillment line item with no matching active listing.
type SoldItem struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Price             float64    `json:"price"`
	Currency          string     `json:"currency"`
	SoldDate          string     `json:"soldDate,omitempty"`
	Condition         string     `json:"condition,omitempty"`
	SellerName        string     `json:"sellerName,omitempty"`
	SellerFeedback    int        `json:"sellerFeedback,omitempty"`
	SellerFeedbackPct float64    `json:"sellerFeedbackPct,omitempty"`
	URL               string     `json:"url,omitempty"`
	Source            SoldSource `json:"source"`
}

// LineItem is one purchased item within an Order.
type LineItem struct {
	ID           string  `json:"id"`
	LegacyItemID string  `json:"legacyItemId,omitempty"`
	Title        string  `json:"title"`
	SKU          string  `json:"sku,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Order is a fulfillment order with its line items.
type Order struct {
	ID           string     `json:"id"`
	CreationDate string     `json:"creationDate"`
	Total        float64    `json:"total"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status,omitempty"`
	LineItems    []LineItem `json:"lineItems"`
}

// OAuthToken is a user token pair issued by the marketplace. It is handed to
// the browser and never stored server side.
type OAuthToken struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	ExpiresIn             int       `json:"expires_in"`
	RefreshTokenExpiresIn int       `json:"refresh_token_expires_in,omitempty"`
	IssuedAt              time.Time `json:"-"`
}

// ExpiresAt returns the instant the access token stops being valid.
func (t *OAuthToken) ExpiresAt() time.Time {
	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// TokenTime returns the issue instant in Unix milliseconds, the format the
// browser stores alongside the token.
func (t *OAuthToken) TokenTime() int64 {
	return t.IssuedAt.UnixMilli()
}

// SpotSourceFallback marks a SpotPrices snapshot built from static values.
const SpotSourceFallback = "fallback"

// SpotPrices is a snapshot of per-ounce USD prices for the four metals.
type SpotPrices struct {
	Gold      float64 `json:"gold"`
	Silver    float64 `json:"silver"`
	Platinum  float64 `json:"platinum"`
	Palladium float64 `json:"palladium"`
	Source    string  `json:"source"`
	Timestamp string  `json:"timestamp"`
	Error     string  `json:"error,omitempty"`
}

// IsFallback reports whether the snapshot came from static values rather
// than the live feed.
func (s *SpotPrices) IsFallback() bool {
	return s.Source == SpotSourceFallback
}

// ByMetal returns the prices keyed by lowercase metal name.
func (s *SpotPrices) ByMetal() map[string]float64 {
	return map[string]float64{
		"gold":      s.Gold,
		"silver":    s.Silver,
		"platinum":  s.Platinum,
		"palladium": s.Palladium,
	}
}

// PriceStats summarizes a set of sold prices.
type PriceStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Range   float64 `json:"range"`
}

// PriceBucket is one bar of a sold-price histogram. Min is inclusive; Max is
// exclusive except for the last bucket.
type PriceBucket struct {
	Label string  `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}
