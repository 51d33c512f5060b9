package ebay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	ebayMocks "github.com/donaldgifford/bullion-desk/internal/ebay/mocks"
)

func TestPaginator_Paginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxPages    int
		setupMocks  func(*ebayMocks.MockSellAPI)
		wantItems   int
		wantPages   int
		wantStopped string
		wantErr     bool
	}{
		{
			name: "single page without next link",
			setupMocks: func(api *ebayMocks.MockSellAPI) {
				api.EXPECT().
					ListInventoryItems(mock.Anything, "tok", 2, 0).
					Return(&ebay.InventoryItemsPage{
						Total:          2,
						InventoryItems: []ebay.InventoryItem{{SKU: "a"}, {SKU: "b"}},
					}, nil).Once()
			},
			wantItems:   2,
			wantPages:   1,
			wantStopped: "no_more_results",
		},
		{
			name: "follows next until empty page",
			setupMocks: func(api *ebayMocks.MockSellAPI) {
				api.EXPECT().
					ListInventoryItems(mock.Anything, "tok", 2, 0).
					Return(&ebay.InventoryItemsPage{
						Total:          3,
						InventoryItems: []ebay.InventoryItem{{SKU: "a"}, {SKU: "b"}},
						Next:           "offset=2",
					}, nil).Once()
				api.EXPECT().
					ListInventoryItems(mock.Anything, "tok", 2, 2).
					Return(&ebay.InventoryItemsPage{
						Total:          3,
						InventoryItems: []ebay.InventoryItem{{SKU: "c"}},
					}, nil).Once()
			},
			wantItems:   3,
			wantPages:   2,
			wantStopped: "no_more_results",
		},
		{
			name:     "stops at max pages",
			maxPages: 2,
			setupMocks: func(api *ebayMocks.MockSellAPI) {
				api.EXPECT().
					ListInventoryItems(mock.Anything, "tok", 2, mock.AnythingOfType("int")).
					Return(&ebay.InventoryItemsPage{
						Total:          10,
						InventoryItems: []ebay.InventoryItem{{SKU: "x"}, {SKU: "y"}},
						Next:           "more",
					}, nil).Times(2)
			},
			wantItems:   4,
			wantPages:   2,
			wantStopped: "max_pages",
		},
		{
			name: "first page error aborts",
			setupMocks: func(api *ebayMocks.MockSellAPI) {
				api.EXPECT().
					ListInventoryItems(mock.Anything, "tok", 2, 0).
					Return(nil, &ebay.APIError{Endpoint: "inventory", StatusCode: 401}).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := ebayMocks.NewMockSellAPI(t)
			tt.setupMocks(api)

			opts := []ebay.PaginatorOption{ebay.WithPageSize(2)}
			if tt.maxPages > 0 {
				opts = append(opts, ebay.WithMaxPages(tt.maxPages))
			}
			p := ebay.NewPaginator(api, opts...)

			result, err := p.Paginate(context.Background(), "tok")
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *ebay.APIError
				assert.True(t, errors.As(err, &apiErr))
				assert.True(t, ebay.IsUnauthorized(err))
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, result.PagesUsed)
			assert.Equal(t, tt.wantStopped, result.StoppedAt)
		})
	}
}
