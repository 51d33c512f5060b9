package ebay

import (
	"encoding/json"
	"strconv"
)

// Amount holds an eBay monetary value. eBay sends the value as a string.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Float parses the value, returning 0 when it is empty or malformed.
func (a Amount) Float() float64 {
	f, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0
	}
	return f
}

// IdentityUser is the Commerce Identity getUser response.
type IdentityUser struct {
	UserID                    string `json:"userId"`
	Username                  string `json:"username"`
	AccountType               string `json:"accountType"`
	RegistrationMarketplaceID string `json:"registrationMarketplaceId"`
}

// InventoryItemsPage is one page of Sell Inventory getInventoryItems.
type InventoryItemsPage struct {
	InventoryItems []InventoryItem `json:"inventoryItems"`
	Total          int             `json:"total"`
	Size           int             `json:"size"`
	Limit          int             `json:"limit"`
	Offset         int             `json:"offset"`
	Next           string          `json:"next"`
}

// InventoryItem is a seller-managed SKU.
type InventoryItem struct {
	SKU          string           `json:"sku"`
	Condition    string           `json:"condition"`
	Product      InventoryProduct `json:"product"`
	Availability struct {
		ShipToLocationAvailability struct {
			Quantity int `json:"quantity"`
		} `json:"shipToLocationAvailability"`
	} `json:"availability"`
}

// InventoryProduct holds the catalog-facing fields of an InventoryItem.
type InventoryProduct struct {
	Title     string   `json:"title"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}

// OffersPage is the Sell Inventory getOffers response for a SKU.
type OffersPage struct {
	Offers []Offer `json:"offers"`
	Total  int     `json:"total"`
}

// Offer publishes an inventory item to a marketplace.
type Offer struct {
	OfferID           string `json:"offerId"`
	SKU               string `json:"sku"`
	MarketplaceID     string `json:"marketplaceId"`
	Format            string `json:"format"`
	AvailableQuantity int    `json:"availableQuantity"`
	Status            string `json:"status"`
	PricingSummary    struct {
		Price Amount `json:"price"`
	} `json:"pricingSummary"`
	Listing *OfferListing `json:"listing,omitempty"`
}

// OfferListing links a published offer to its listing id.
type OfferListing struct {
	ListingID     string `json:"listingId"`
	ListingStatus string `json:"listingStatus"`
}

// CampaignsPage is the Sell Marketing getCampaigns response.
type CampaignsPage struct {
	Campaigns []Campaign `json:"campaigns"`
	Total     int        `json:"total"`
}

// Campaign is a Promoted Listings campaign.
type Campaign struct {
	CampaignID     string `json:"campaignId"`
	CampaignName   string `json:"campaignName"`
	CampaignStatus string `json:"campaignStatus"`
}

// AdsPage is the Sell Marketing getAds response for one campaign.
type AdsPage struct {
	Ads   []Ad `json:"ads"`
	Total int  `json:"total"`
}

// Ad promotes one listing inside a campaign.
type Ad struct {
	AdID          string `json:"adId"`
	ListingID     string `json:"listingId"`
	BidPercentage string `json:"bidPercentage"`
	AdStatus      string `json:"adStatus"`
}

// TrafficReport is the Sell Analytics getTrafficReport response.
type TrafficReport struct {
	Records           []TrafficRecord     `json:"records"`
	DimensionMetadata []DimensionMetadata `json:"dimensionMetadata"`
}

// TrafficRecord holds metrics for one dimension value (a listing id).
type TrafficRecord struct {
	DimensionValues []TrafficValue `json:"dimensionValues"`
	MetricValues    []TrafficValue `json:"metricValues"`
}

// TrafficValue is a single cell. Value is a string for dimensions and a
// number for metrics.
type TrafficValue struct {
	Value      json.RawMessage `json:"value"`
	Applicable bool            `json:"applicable"`
}

// String returns the value unquoted.
func (v TrafficValue) String() string {
	var s string
	if err := json.Unmarshal(v.Value, &s); err == nil {
		return s
	}
	return string(v.Value)
}

// DimensionMetadata carries extra columns such as listing titles.
type DimensionMetadata struct {
	MetadataRecords []struct {
		Value          TrafficValue   `json:"value"`
		MetadataValues []TrafficValue `json:"metadataValues"`
	} `json:"metadataRecords"`
}

// OrdersPage is the Sell Fulfillment getOrders response.
type OrdersPage struct {
	Orders []FulfillmentOrder `json:"orders"`
	Total  int                `json:"total"`
}

// FulfillmentOrder is a completed purchase.
type FulfillmentOrder struct {
	OrderID                string `json:"orderId"`
	CreationDate           string `json:"creationDate"`
	OrderFulfillmentStatus string `json:"orderFulfillmentStatus"`
	PricingSummary         struct {
		Total Amount `json:"total"`
	} `json:"pricingSummary"`
	LineItems []OrderLineItem `json:"lineItems"`
}

// OrderLineItem is one purchased item.
type OrderLineItem struct {
	LineItemID   string `json:"lineItemId"`
	LegacyItemID string `json:"legacyItemId"`
	Title        string `json:"title"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	LineItemCost Amount `json:"lineItemCost"`
}
