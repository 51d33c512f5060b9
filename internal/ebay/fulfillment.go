package ebay

import (
	"context"
	"net/url"
	"strconv"
)

const ordersPath = "/sell/fulfillment/v1/order"

// ListOrders returns the seller's most recent orders.
func (c *SellClient) ListOrders(ctx context.Context, token string, limit int) (*OrdersPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var page OrdersPage
	if err := c.getJSON(ctx, "orders", token, c.endpointURL(ordersPath, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
