package ebay_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	ebayMocks "github.com/donaldgifford/bullion-desk/internal/ebay/mocks"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

func ptr[T any](v T) *T { return &v }

const completedItemsJSON = `{"findCompletedItemsResponse":[{
	"ack":["Success"],
	"version":["1.13.0"],
	"searchResult":[{"@count":"2","item":[
		{
			"itemId":["226012345678"],
			"title":["2024 American Silver Eagle 1 oz BU"],
			"viewItemURL":["https://www.ebay.com/itm/226012345678"],
			"sellingStatus":[{"currentPrice":[{"@currencyId":"USD","__value__":"36.99"}],"sellingState":["EndedWithSales"]}],
			"listingInfo":[{"endTime":["2026-05-28T17:21:04.000Z"]}],
			"condition":[{"conditionId":["1000"],"conditionDisplayName":["New"]}],
			"sellerInfo":[{"sellerUserName":["coinshop"],"feedbackScore":["15230"],"positiveFeedbackPercent":["99.8"]}]
		},
		{
			"itemId":["226087654321"],
			"title":["American Silver Eagle 1 oz"],
			"sellingStatus":[{"currentPrice":[{"@currencyId":"USD","__value__":"34.50"}]}]
		}
	]}],
	"paginationOutput":[{"totalEntries":["118"],"entriesPerPage":["50"]}]
}]}`

func TestBuildFindingParams(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		req   ebay.SoldSearchRequest
		check func(t *testing.T, got map[string]string)
	}{
		{
			name: "query only",
			req:  ebay.SoldSearchRequest{Query: "  silver eagle  "},
			check: func(t *testing.T, got map[string]string) {
				t.Helper()
				assert.Equal(t, "findCompletedItems", got["OPERATION-NAME"])
				assert.Equal(t, "app-id", got["SECURITY-APPNAME"])
				assert.Equal(t, "JSON", got["RESPONSE-DATA-FORMAT"])
				assert.Equal(t, "silver eagle", got["keywords"])
				assert.Equal(t, "50", got["paginationInput.entriesPerPage"])
				assert.Equal(t, "SoldItemsOnly", got["itemFilter(0).name"])
				assert.Equal(t, "true", got["itemFilter(0).value"])
				assert.Equal(t, "EndTimeFrom", got["itemFilter(1).name"])
				assert.Equal(t, "2026-05-02T12:00:00.000Z", got["itemFilter(1).value"])
				assert.NotContains(t, got, "itemFilter(2).name")
				assert.NotContains(t, got, "categoryId")
			},
		},
		{
			name: "all filters",
			req: ebay.SoldSearchRequest{
				Query:      "gold buffalo",
				MinPrice:   ptr(2000.0),
				MaxPrice:   ptr(3000.5),
				Condition:  "Used",
				CategoryID: "39482",
				Days:       7,
				Limit:      25,
			},
			check: func(t *testing.T, got map[string]string) {
				t.Helper()
				assert.Equal(t, "39482", got["categoryId"])
				assert.Equal(t, "25", got["paginationInput.entriesPerPage"])

				assert.Equal(t, "MinPrice", got["itemFilter(1).name"])
				assert.Equal(t, "2000.00", got["itemFilter(1).value"])
				assert.Equal(t, "Currency", got["itemFilter(1).paramName"])
				assert.Equal(t, "USD", got["itemFilter(1).paramValue"])

				assert.Equal(t, "MaxPrice", got["itemFilter(2).name"])
				assert.Equal(t, "3000.50", got["itemFilter(2).value"])
				assert.Equal(t, "Currency", got["itemFilter(2).paramName"])

				assert.Equal(t, "Condition", got["itemFilter(3).name"])
				assert.Equal(t, "3000", got["itemFilter(3).value"])

				assert.Equal(t, "EndTimeFrom", got["itemFilter(4).name"])
				assert.Equal(t, "2026-05-25T12:00:00.000Z", got["itemFilter(4).value"])
			},
		},
		{
			name: "new condition and clamped window",
			req:  ebay.SoldSearchRequest{Query: "krugerrand", Condition: "new", Days: 365, Limit: 1000},
			check: func(t *testing.T, got map[string]string) {
				t.Helper()
				assert.Equal(t, "Condition", got["itemFilter(1).name"])
				assert.Equal(t, "1000", got["itemFilter(1).value"])
				assert.Equal(t, "2026-03-03T12:00:00.000Z", got["itemFilter(2).value"])
				assert.Equal(t, "100", got["paginationInput.entriesPerPage"])
			},
		},
		{
			name: "unknown condition is dropped",
			req:  ebay.SoldSearchRequest{Query: "maple", Condition: "shiny"},
			check: func(t *testing.T, got map[string]string) {
				t.Helper()
				assert.Equal(t, "EndTimeFrom", got["itemFilter(1).name"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := ebay.BuildFindingParams("app-id", tt.req, now)
			flat := make(map[string]string, len(params))
			for k := range params {
				flat[k] = params.Get(k)
			}
			tt.check(t, flat)
		})
	}
}

func TestFindingClient_SearchCompleted(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "app-token", r.Header.Get("X-EBAY-SOA-SECURITY-IAFTOKEN"))
		assert.Equal(t, "silver eagle", r.URL.Query().Get("keywords"))
		assert.Equal(t, "client-id", r.URL.Query().Get("SECURITY-APPNAME"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completedItemsJSON))
	}))
	defer srv.Close()

	tokens := ebayMocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("app-token", nil).Once()

	c := ebay.NewFindingClient("client-id", tokens, ebay.WithFindingURL(srv.URL))
	resp, err := c.SearchCompleted(context.Background(), ebay.SoldSearchRequest{Query: "silver eagle"})
	require.NoError(t, err)

	assert.Equal(t, 118, resp.Total)
	require.Len(t, resp.Items, 2)

	first := resp.Items[0]
	assert.Equal(t, domain.SoldItem{
		ID:                "226012345678",
		Title:             "2024 American Silver Eagle 1 oz BU",
		Price:             36.99,
		Currency:          "USD",
		SoldDate:          "2026-05-28T17:21:04.000Z",
		Condition:         "New",
		SellerName:        "coinshop",
		SellerFeedback:    15230,
		SellerFeedbackPct: 99.8,
		URL:               "https://www.ebay.com/itm/226012345678",
		Source:            domain.SoldFromCompletedSearch,
	}, first)

	assert.InDelta(t, 34.50, resp.Items[1].Price, 0.001)
	assert.Empty(t, resp.Items[1].SellerName)
}

func TestFindingClient_SearchCompleted_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		appID      string
		query      string
		tokenErr   error
		status     int
		body       string
		wantIs     error
		wantStatus int
		wantErr    string
	}{
		{
			name:   "missing app id",
			query:  "eagle",
			wantIs: ebay.ErrMissingCredentials,
		},
		{
			name:    "missing query",
			appID:   "client-id",
			query:   "   ",
			wantErr: "search query is required",
		},
		{
			name:     "token failure",
			appID:    "client-id",
			query:    "eagle",
			tokenErr: errors.New("boom"),
			wantErr:  "getting auth token",
		},
		{
			name:       "upstream status",
			appID:      "client-id",
			query:      "eagle",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:    "ack failure",
			appID:   "client-id",
			query:   "eagle",
			status:  http.StatusOK,
			body:    `{"findCompletedItemsResponse":[{"ack":["Failure"],"errorMessage":[{"error":[{"message":["Invalid application id"]}]}]}]}`,
			wantErr: "Invalid application id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tokens := ebayMocks.NewMockTokenProvider(t)
			if tt.appID != "" && tt.query == "eagle" {
				tokens.EXPECT().Token(mock.Anything).Return("app-token", tt.tokenErr).Once()
			}

			c := ebay.NewFindingClient(tt.appID, tokens, ebay.WithFindingURL(srv.URL))
			_, err := c.SearchCompleted(context.Background(), ebay.SoldSearchRequest{Query: tt.query})
			require.Error(t, err)

			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, ebay.StatusCode(err))
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
