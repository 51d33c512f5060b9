package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

const (
	defaultFindingURL     = "https://svcs.ebay.com/services/search/FindingService/v1"
	findingServiceVersion = "1.13.0"

	defaultSoldLimit = 50
	maxSoldLimit     = 100
	defaultSoldDays  = 30
	// The Finding API keeps completed items for 90 days.
	maxSoldDays = 90
)

// Condition ids understood by the Finding API Condition filter.
var conditionIDs = map[string]string{
	"new":  "1000",
	"used": "3000",
}

// SoldSearchRequest is a completed-items query with optional filters.
type SoldSearchRequest struct {
	Query      string
	MinPrice   *float64
	MaxPrice   *float64
	Condition  string // "new", "used", a numeric condition id, or empty
	CategoryID string
	Days       int
	Limit      int
}

// Normalize applies defaults and clamps Days and Limit to what the Finding
// API accepts.
func (r SoldSearchRequest) Normalize() SoldSearchRequest {
	r.Query = strings.TrimSpace(r.Query)
	r.Condition = strings.ToLower(strings.TrimSpace(r.Condition))
	if r.Days <= 0 {
		r.Days = defaultSoldDays
	}
	r.Days = min(r.Days, maxSoldDays)
	if r.Limit <= 0 {
		r.Limit = defaultSoldLimit
	}
	r.Limit = min(r.Limit, maxSoldLimit)
	return r
}

// SoldSearchResponse holds the sold items matched by a search.
type SoldSearchResponse struct {
	Items []domain.SoldItem
	Total int
}

// FindingClient implements SoldSearcher with the legacy Finding API
// findCompletedItems call.
type FindingClient struct {
	appID       string
	findingURL  string
	tokens      TokenProvider
	client      *http.Client
	rateLimiter *RateLimiter
	nowFunc     func() time.Time
}

// FindingOption configures the FindingClient.
type FindingOption func(*FindingClient)

// WithFindingURL overrides the Finding API endpoint.
func WithFindingURL(u string) FindingOption {
	return func(c *FindingClient) {
		c.findingURL = u
	}
}

// WithFindingHTTPClient overrides the default HTTP client.
func WithFindingHTTPClient(hc *http.Client) FindingOption {
	return func(c *FindingClient) {
		c.client = hc
	}
}

// WithFindingRateLimiter injects a rate limiter shared with the Sell client.
func WithFindingRateLimiter(r *RateLimiter) FindingOption {
	return func(c *FindingClient) {
		c.rateLimiter = r
	}
}

// WithFindingNowFunc overrides the time function for testing.
func WithFindingNowFunc(f func() time.Time) FindingOption {
	return func(c *FindingClient) {
		c.nowFunc = f
	}
}

// NewFindingClient creates a FindingClient. appID is sent as
// SECURITY-APPNAME; tokens supplies the application token.
func NewFindingClient(appID string, tokens TokenProvider, opts ...FindingOption) *FindingClient {
	c := &FindingClient{
		appID:      appID,
		findingURL: defaultFindingURL,
		tokens:     tokens,
		client:     &http.Client{Timeout: 30 * time.Second},
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchCompleted runs findCompletedItems restricted to sold items.
func (c *FindingClient) SearchCompleted(
	ctx context.Context,
	req SoldSearchRequest,
) (*SoldSearchResponse, error) {
	if c.appID == "" {
		return nil, ErrMissingCredentials
	}

	req = req.Normalize()
	if req.Query == "" {
		return nil, errors.New("search query is required")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	if err := c.rateLimiter.acquire(ctx, "finding"); err != nil {
		return nil, err
	}

	params := BuildFindingParams(c.appID, req, c.nowFunc())
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.findingURL+"?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating finding request: %w", err)
	}
	httpReq.Header.Set("X-EBAY-SOA-SECURITY-IAFTOKEN", token)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.EbayAPICallsTotal.WithLabelValues("finding", "network_error").Inc()
		return nil, fmt.Errorf("executing finding request: %w", err)
	}
	defer resp.Body.Close()

	metrics.EbayAPICallsTotal.WithLabelValues("finding", strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading finding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Endpoint:   "finding",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return parseFindingResponse(body)
}

// BuildFindingParams encodes req as findCompletedItems URL parameters.
// Item filters are numbered in the order SoldItemsOnly, MinPrice, MaxPrice,
// Condition, EndTimeFrom, skipping any that are unset.
func BuildFindingParams(appID string, req SoldSearchRequest, now time.Time) url.Values {
	req = req.Normalize()

	params := url.Values{}
	params.Set("OPERATION-NAME", "findCompletedItems")
	params.Set("SERVICE-VERSION", findingServiceVersion)
	params.Set("SECURITY-APPNAME", appID)
	params.Set("RESPONSE-DATA-FORMAT", "JSON")
	params.Set("REST-PAYLOAD", "")
	params.Set("keywords", req.Query)
	params.Set("paginationInput.entriesPerPage", strconv.Itoa(req.Limit))
	params.Set("sortOrder", "EndTimeSoonest")

	if req.CategoryID != "" {
		params.Set("categoryId", req.CategoryID)
	}

	n := 0
	filter := func(name, value string) int {
		params.Set(fmt.Sprintf("itemFilter(%d).name", n), name)
		params.Set(fmt.Sprintf("itemFilter(%d).value", n), value)
		n++
		return n - 1
	}
	currency := func(i int) {
		params.Set(fmt.Sprintf("itemFilter(%d).paramName", i), "Currency")
		params.Set(fmt.Sprintf("itemFilter(%d).paramValue", i), "USD")
	}

	filter("SoldItemsOnly", "true")

	if req.MinPrice != nil {
		currency(filter("MinPrice", formatPrice(*req.MinPrice)))
	}
	if req.MaxPrice != nil {
		currency(filter("MaxPrice", formatPrice(*req.MaxPrice)))
	}

	if id := conditionID(req.Condition); id != "" {
		filter("Condition", id)
	}

	from := now.UTC().Add(-time.Duration(req.Days) * 24 * time.Hour)
	filter("EndTimeFrom", from.Format("2006-01-02T15:04:05.000Z"))

	return params
}

func conditionID(condition string) string {
	if id, ok := conditionIDs[condition]; ok {
		return id
	}
	if _, err := strconv.Atoi(condition); err == nil {
		return condition
	}
	return ""
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// The Finding API wraps every JSON value in a single-element array.
type findingEnvelope struct {
	FindCompletedItemsResponse []findingResponse `json:"findCompletedItemsResponse"`
}

type findingResponse struct {
	Ack          []string `json:"ack"`
	ErrorMessage []struct {
		Error []struct {
			Message []string `json:"message"`
		} `json:"error"`
	} `json:"errorMessage"`
	SearchResult []struct {
		Item []findingItem `json:"item"`
	} `json:"searchResult"`
	PaginationOutput []struct {
		TotalEntries []string `json:"totalEntries"`
	} `json:"paginationOutput"`
}

type findingAmount struct {
	CurrencyID string `json:"@currencyId"`
	Value      string `json:"__value__"`
}

type findingItem struct {
	ItemID        []string `json:"itemId"`
	Title         []string `json:"title"`
	ViewItemURL   []string `json:"viewItemURL"`
	SellingStatus []struct {
		CurrentPrice []findingAmount `json:"currentPrice"`
	} `json:"sellingStatus"`
	ListingInfo []struct {
		EndTime []string `json:"endTime"`
	} `json:"listingInfo"`
	Condition []struct {
		ConditionDisplayName []string `json:"conditionDisplayName"`
	} `json:"condition"`
	SellerInfo []struct {
		SellerUserName          []string `json:"sellerUserName"`
		FeedbackScore           []string `json:"feedbackScore"`
		PositiveFeedbackPercent []string `json:"positiveFeedbackPercent"`
	} `json:"sellerInfo"`
}

func first[T any](s []T) T {
	var zero T
	if len(s) == 0 {
		return zero
	}
	return s[0]
}

func parseFindingResponse(body []byte) (*SoldSearchResponse, error) {
	var env findingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing finding response: %w", err)
	}
	if len(env.FindCompletedItemsResponse) == 0 {
		return nil, errors.New("parsing finding response: empty envelope")
	}

	r := env.FindCompletedItemsResponse[0]
	if ack := first(r.Ack); ack != "Success" && ack != "Warning" {
		msg := first(first(first(r.ErrorMessage).Error).Message)
		if msg == "" {
			msg = "ack " + ack
		}
		return nil, fmt.Errorf("finding API error: %s", msg)
	}

	items := first(r.SearchResult).Item
	out := &SoldSearchResponse{Items: make([]domain.SoldItem, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, toSoldItem(&items[i]))
	}

	if total, err := strconv.Atoi(first(first(r.PaginationOutput).TotalEntries)); err == nil {
		out.Total = total
	} else {
		out.Total = len(out.Items)
	}

	return out, nil
}
