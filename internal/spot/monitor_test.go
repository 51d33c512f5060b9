package spot_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	"github.com/donaldgifford/bullion-desk/internal/spot"
	spotMocks "github.com/donaldgifford/bullion-desk/internal/spot/mocks"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMonitor_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	m, err := spot.NewMonitor(spotMocks.NewMockFetcher(t), 5*time.Minute, time.Second, quietLogger())
	require.NoError(t, err)
	assert.Len(t, m.Entries(), 1)
	assert.Nil(t, m.Last())
}

func TestMonitor_StartStop(t *testing.T) {
	t.Parallel()

	m, err := spot.NewMonitor(spotMocks.NewMockFetcher(t), time.Hour, time.Second, quietLogger())
	require.NoError(t, err)

	m.Start()
	ctx := m.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

// Not parallel: asserts on the shared spot gauges.
func TestMonitor_Poll(t *testing.T) {
	tests := []struct {
		name   string
		prices domain.SpotPrices
	}{
		{
			name: "live prices",
			prices: domain.SpotPrices{
				Gold: 2650.1, Silver: 30.2, Platinum: 990.75, Palladium: 950.4, Source: "metals.live",
			},
		},
		{
			name:   "fallback prices",
			prices: spot.Fallback(assert.AnError, time.Now()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := spotMocks.NewMockFetcher(t)
			f.EXPECT().Fetch(mock.Anything).Return(tt.prices).Once()

			m, err := spot.NewMonitor(f, time.Hour, time.Second, quietLogger())
			require.NoError(t, err)

			m.Poll()

			require.NotNil(t, m.Last())
			assert.Equal(t, tt.prices, *m.Last())
			assert.InDelta(t, tt.prices.Gold, ptestutil.ToFloat64(metrics.SpotPriceUSD.WithLabelValues("gold")), 0.001)
			assert.InDelta(t, tt.prices.Silver, ptestutil.ToFloat64(metrics.SpotPriceUSD.WithLabelValues("silver")), 0.001)
			assert.InDelta(t, tt.prices.Platinum, ptestutil.ToFloat64(metrics.SpotPriceUSD.WithLabelValues("platinum")), 0.001)
			assert.InDelta(t, tt.prices.Palladium, ptestutil.ToFloat64(metrics.SpotPriceUSD.WithLabelValues("palladium")), 0.001)
		})
	}
}
