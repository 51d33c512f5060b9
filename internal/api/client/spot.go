package client

import (
	"context"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// SpotPrices returns current metal spot prices. A fallback snapshot is not
// an error; check IsFallback on the result.
func (c *Client) SpotPrices(ctx context.Context) (*domain.SpotPrices, error) {
	var s domain.SpotPrices
	if err := c.get(ctx, "/api/spot-prices", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
