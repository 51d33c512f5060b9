package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/bullion-desk/internal/inventory"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// ListingsHandler serves the aggregated seller view and the connectivity
// diagnostics, both driven by the user's bearer token.
type ListingsHandler struct {
	svc inventory.Service
	log *slog.Logger
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(svc inventory.Service, log *slog.Logger) *ListingsHandler {
	return &ListingsHandler{svc: svc, log: logger.Component(log, "listings")}
}

// --- Input/Output types ---

// BearerInput carries the user's eBay access token.
type BearerInput struct {
	Authorization string `header:"Authorization" doc:"Bearer <eBay user access token>"`
}

// ListingsOutput is the response for the listings aggregator.
type ListingsOutput struct {
	Body struct {
		Success      bool              `json:"success"`
		Username     string            `json:"username"`
		Listings     []domain.Listing  `json:"listings"`
		SoldItems    []domain.SoldItem `json:"soldItems"`
		RecentOrders []domain.Order    `json:"recentOrders"`
		Raw          map[string]int    `json:"raw"          doc:"Record count returned by each source"`
		Errors       map[string]string `json:"errors"       doc:"Failure message for each degraded source"`
		APIStatus    map[string]int    `json:"apiStatus"    doc:"Upstream HTTP status per source; 0 when no response was received"`
	}
}

// --- Handlers ---

// Listings merges every seller source into one view. Source failures are
// reported inline; only a rejected token fails the request.
func (h *ListingsHandler) Listings(ctx context.Context, in *BearerInput) (*ListingsOutput, error) {
	token := bearerToken(in.Authorization)
	if token == "" {
		return nil, needsRefresh("missing bearer token")
	}

	res, err := h.svc.Listings(ctx, token)
	if err != nil {
		if errors.Is(err, inventory.ErrUnauthorized) {
			return nil, needsRefresh("eBay token expired or invalid")
		}
		h.log.Error("listings aggregation failed", "error", err)
		return nil, newAPIError(http.StatusInternalServerError, "listings aggregation failed: "+err.Error())
	}

	resp := &ListingsOutput{}
	resp.Body.Success = true
	resp.Body.Username = res.Username
	resp.Body.Listings = nonNil(res.Listings)
	resp.Body.SoldItems = nonNil(res.SoldItems)
	resp.Body.RecentOrders = nonNil(res.RecentOrders)
	resp.Body.Raw = res.Raw
	resp.Body.Errors = res.Errors
	resp.Body.APIStatus = res.APIStatus

	return resp, nil
}

func needsRefresh(msg string) *APIError {
	e := newAPIError(http.StatusUnauthorized, msg)
	e.NeedsRefresh = true
	return e
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RegisterListingRoutes registers the aggregator on GET and POST, which
// the browser uses interchangeably.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		huma.Register(api, huma.Operation{
			OperationID:   "ebay-listings-" + strings.ToLower(method),
			Method:        method,
			Path:          "/api/ebay/listings",
			Summary:       "Aggregate seller listings",
			Description:   "Merges inventory offers, traffic analytics, and promoted listings, and derives sold items from recent orders.",
			Tags:          []string{"ebay"},
			DefaultStatus: http.StatusOK,
			Errors:        []int{http.StatusUnauthorized},
		}, h.Listings)
	}
}
