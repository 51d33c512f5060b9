package ebay

import (
	"context"
	"net/url"
	"strconv"
)

const (
	inventoryItemsPath = "/sell/inventory/v1/inventory_item"
	offersPath         = "/sell/inventory/v1/offer"
)

// ListInventoryItems returns one page of the seller's inventory items.
func (c *SellClient) ListInventoryItems(
	ctx context.Context,
	token string,
	limit, offset int,
) (*InventoryItemsPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var page InventoryItemsPage
	if err := c.getJSON(ctx, "inventory", token, c.endpointURL(inventoryItemsPath, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListOffers returns the offers published for sku.
func (c *SellClient) ListOffers(ctx context.Context, token, sku string) (*OffersPage, error) {
	params := url.Values{}
	params.Set("sku", sku)
	params.Set("marketplace_id", c.marketplace)

	var page OffersPage
	if err := c.getJSON(ctx, "offers", token, c.endpointURL(offersPath, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
