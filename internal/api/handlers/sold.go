package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
	"github.com/donaldgifford/bullion-desk/pkg/pricestats"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// SoldHandler searches completed sales and summarizes their prices.
type SoldHandler struct {
	searcher ebay.SoldSearcher
	log      *slog.Logger
}

// NewSoldHandler creates a new SoldHandler.
func NewSoldHandler(s ebay.SoldSearcher, log *slog.Logger) *SoldHandler {
	return &SoldHandler{searcher: s, log: logger.Component(log, "sold")}
}

// --- Input/Output types ---

// SoldQueryInput is the GET form of a sold-listings search.
type SoldQueryInput struct {
	Q          string  `query:"q"           doc:"Search keywords"                            example:"1 oz silver eagle"`
	MinPrice   float64 `query:"min_price"   doc:"Minimum sold price in USD; 0 for no minimum" minimum:"0"`
	MaxPrice   float64 `query:"max_price"   doc:"Maximum sold price in USD; 0 for no maximum" minimum:"0"`
	Condition  string  `query:"condition"   doc:"new, used, or a numeric eBay condition id"`
	CategoryID string  `query:"category_id" doc:"eBay category id"                           example:"39482"`
	Days       int     `query:"days"        doc:"Look-back window in days (default 30, max 90)"  minimum:"0"`
	Limit      int     `query:"limit"       doc:"Maximum items (default 50, max 100)"            minimum:"0"`
}

// SoldBodyInput is the POST form of a sold-listings search.
type SoldBodyInput struct {
	Body struct {
		Q          string   `json:"q,omitempty"`
		MinPrice   *float64 `json:"min_price,omitempty"`
		MaxPrice   *float64 `json:"max_price,omitempty"`
		Condition  string   `json:"condition,omitempty"`
		CategoryID string   `json:"category_id,omitempty"`
		Days       int      `json:"days,omitempty"`
		Limit      int      `json:"limit,omitempty"`
	} `required:"false"`
}

// SearchParams echoes the normalized search back to the caller.
type SearchParams struct {
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	Condition  string   `json:"condition,omitempty"`
	CategoryID string   `json:"categoryId,omitempty"`
	Days       int      `json:"days"`
	Limit      int      `json:"limit"`
}

// SoldOutput is the response for a sold-listings search.
type SoldOutput struct {
	Body struct {
		Success           bool                 `json:"success"`
		Query             string               `json:"query"`
		Stats             domain.PriceStats    `json:"stats"`
		PriceDistribution []domain.PriceBucket `json:"priceDistribution"`
		Items             []domain.SoldItem    `json:"items"`
		Total             int                  `json:"total" doc:"Total matches reported by eBay, which may exceed len(items)"`
		SearchParams      SearchParams         `json:"searchParams"`
	}
}

// --- Handlers ---

// SearchGet handles the query-string form.
func (h *SoldHandler) SearchGet(ctx context.Context, in *SoldQueryInput) (*SoldOutput, error) {
	req := ebay.SoldSearchRequest{
		Query:      in.Q,
		Condition:  in.Condition,
		CategoryID: in.CategoryID,
		Days:       in.Days,
		Limit:      in.Limit,
	}
	if in.MinPrice > 0 {
		req.MinPrice = &in.MinPrice
	}
	if in.MaxPrice > 0 {
		req.MaxPrice = &in.MaxPrice
	}
	return h.search(ctx, req)
}

// SearchPost handles the JSON body form.
func (h *SoldHandler) SearchPost(ctx context.Context, in *SoldBodyInput) (*SoldOutput, error) {
	return h.search(ctx, ebay.SoldSearchRequest{
		Query:      in.Body.Q,
		MinPrice:   in.Body.MinPrice,
		MaxPrice:   in.Body.MaxPrice,
		Condition:  in.Body.Condition,
		CategoryID: in.Body.CategoryID,
		Days:       in.Body.Days,
		Limit:      in.Body.Limit,
	})
}

func (h *SoldHandler) search(ctx context.Context, req ebay.SoldSearchRequest) (*SoldOutput, error) {
	req = req.Normalize()
	if req.Query == "" {
		return nil, newAPIError(http.StatusBadRequest, "search query (q) is required")
	}

	res, err := h.searcher.SearchCompleted(ctx, req)
	if err != nil {
		return nil, h.searchError(err)
	}

	prices := make([]float64, 0, len(res.Items))
	for i := range res.Items {
		if res.Items[i].Price > 0 {
			prices = append(prices, res.Items[i].Price)
		}
	}

	resp := &SoldOutput{}
	resp.Body.Success = true
	resp.Body.Query = req.Query
	resp.Body.Stats = pricestats.Summarize(prices)
	resp.Body.PriceDistribution = nonNil(pricestats.Distribution(prices))
	resp.Body.Items = nonNil(res.Items)
	resp.Body.Total = res.Total
	resp.Body.SearchParams = SearchParams{
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Condition:  req.Condition,
		CategoryID: req.CategoryID,
		Days:       req.Days,
		Limit:      req.Limit,
	}

	return resp, nil
}

func (h *SoldHandler) searchError(err error) *APIError {
	switch {
	case errors.Is(err, ebay.ErrMissingCredentials):
		return newAPIError(http.StatusInternalServerError, "eBay client id is not configured")
	case errors.Is(err, ebay.ErrDailyLimitReached):
		return newAPIError(http.StatusTooManyRequests, "daily eBay API limit reached")
	}

	h.log.Warn("sold search failed", "error", err)
	status := ebay.StatusCode(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return newAPIError(status, "sold listings search failed: "+err.Error())
}

// RegisterSoldRoutes registers both forms of the sold-listings search.
func RegisterSoldRoutes(api huma.API, h *SoldHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-sold-listings",
		Method:      http.MethodGet,
		Path:        "/api/sold-listings",
		Summary:     "Search sold listings",
		Description: "Searches completed eBay sales and returns price statistics and a five-bucket histogram.",
		Tags:        []string{"sold"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError},
	}, h.SearchGet)

	huma.Register(api, huma.Operation{
		OperationID:   "search-sold-listings-post",
		Method:        http.MethodPost,
		Path:          "/api/sold-listings",
		Summary:       "Search sold listings (JSON body)",
		Description:   "Same as the GET form with the filters in a JSON body.",
		Tags:          []string{"sold"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError},
	}, h.SearchPost)
}
