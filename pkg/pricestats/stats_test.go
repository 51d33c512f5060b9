package pricestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prices []float64
		want   domain.PriceStats
	}{
		{
			name:   "three prices",
			prices: []float64{10, 20, 30},
			want:   domain.PriceStats{Count: 3, Average: 20, Median: 20, Low: 10, High: 30, Range: 20},
		},
		{
			name:   "unsorted even count uses middle pair",
			prices: []float64{40, 10, 30, 20},
			want:   domain.PriceStats{Count: 4, Average: 25, Median: 25, Low: 10, High: 40, Range: 30},
		},
		{
			name:   "single price",
			prices: []float64{31.5},
			want:   domain.PriceStats{Count: 1, Average: 31.5, Median: 31.5, Low: 31.5, High: 31.5},
		},
		{
			name:   "average rounded to cents",
			prices: []float64{10, 10, 10.01},
			want:   domain.PriceStats{Count: 3, Average: 10, Median: 10, Low: 10, High: 10.01, Range: 0.01},
		},
		{
			name:   "empty",
			prices: nil,
			want:   domain.PriceStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Summarize(tt.prices))
		})
	}
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	prices := []float64{30, 10, 20}
	_ = Summarize(prices)
	assert.Equal(t, []float64{30, 10, 20}, prices)
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		prices     []float64
		wantCounts []int
	}{
		{
			name:       "spread across range",
			prices:     []float64{10, 20, 30},
			wantCounts: []int{1, 0, 1, 0, 1},
		},
		{
			name:       "max lands in last bucket",
			prices:     []float64{0, 100, 100, 99.99},
			wantCounts: []int{1, 0, 0, 0, 3},
		},
		{
			name:       "identical prices share first bucket",
			prices:     []float64{25, 25, 25},
			wantCounts: []int{3, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buckets := Distribution(tt.prices)
			require.Len(t, buckets, BucketCount)

			total := 0
			for i, b := range buckets {
				assert.Equal(t, tt.wantCounts[i], b.Count, "bucket %d", i)
				total += b.Count
			}
			assert.Equal(t, len(tt.prices), total)
		})
	}
}

func TestDistribution_Bounds(t *testing.T) {
	t.Parallel()

	buckets := Distribution([]float64{10, 20, 30})
	require.Len(t, buckets, BucketCount)

	assert.InDelta(t, 10.0, buckets[0].Min, 0.001)
	assert.InDelta(t, 14.0, buckets[0].Max, 0.001)
	assert.InDelta(t, 30.0, buckets[4].Max, 0.001)
	assert.Equal(t, "$10.00 - $14.00", buckets[0].Label)
}

func TestDistribution_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Distribution(nil))
}
