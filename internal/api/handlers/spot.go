package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/bullion-desk/internal/spot"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// SpotHandler serves current metal spot prices.
type SpotHandler struct {
	fetcher spot.Fetcher
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(f spot.Fetcher) *SpotHandler {
	return &SpotHandler{fetcher: f}
}

// SpotOutput is the response for the spot price endpoint.
type SpotOutput struct {
	Body domain.SpotPrices
}

// GetSpotPrices returns live prices, or the static fallback with error set.
// Callers tell the two apart by source, never by status code.
func (h *SpotHandler) GetSpotPrices(ctx context.Context, _ *struct{}) (*SpotOutput, error) {
	return &SpotOutput{Body: h.fetcher.Fetch(ctx)}, nil
}

// RegisterSpotRoutes registers the spot price endpoint.
func RegisterSpotRoutes(api huma.API, h *SpotHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-spot-prices",
		Method:      http.MethodGet,
		Path:        "/api/spot-prices",
		Summary:     "Get metal spot prices",
		Description: "Returns gold, silver, platinum, and palladium prices per troy ounce in USD. " +
			"Falls back to static prices with source=fallback when the feed is unavailable.",
		Tags: []string{"spot"},
	}, h.GetSpotPrices)
}
