// Package pricestats computes summary statistics and histograms over sold
// prices.
package pricestats

import (
	"fmt"
	"math"
	"slices"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// BucketCount is the fixed number of histogram buckets.
const BucketCount = 5

// Summarize returns mean, median, low, high, and range for prices. An empty
// slice yields zero stats.
func Summarize(prices []float64) domain.PriceStats {
	if len(prices) == 0 {
		return domain.PriceStats{}
	}

	sorted := slices.Clone(prices)
	slices.Sort(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}

	low := sorted[0]
	high := sorted[len(sorted)-1]

	return domain.PriceStats{
		Count:   len(sorted),
		Average: round2(sum / float64(len(sorted))),
		Median:  round2(median(sorted)),
		Low:     low,
		High:    high,
		Range:   round2(high - low),
	}
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Distribution splits [low, high] into BucketCount equal-width buckets and
// counts prices into them. The highest price lands in the last bucket, so
// bucket counts always sum to len(prices). When every price is the same, all
// of them fall in the first bucket.
func Distribution(prices []float64) []domain.PriceBucket {
	if len(prices) == 0 {
		return nil
	}

	low := slices.Min(prices)
	high := slices.Max(prices)
	width := (high - low) / BucketCount

	buckets := make([]domain.PriceBucket, BucketCount)
	for i := range buckets {
		lo := low + float64(i)*width
		hi := lo + width
		if i == BucketCount-1 {
			hi = high
		}
		buckets[i] = domain.PriceBucket{
			Label: fmt.Sprintf("$%.2f - $%.2f", lo, hi),
			Min:   round2(lo),
			Max:   round2(hi),
		}
	}

	for _, p := range prices {
		buckets[bucketIndex(p, low, width)].Count++
	}

	return buckets
}

func bucketIndex(p, low, width float64) int {
	if width == 0 {
		return 0
	}
	idx := int((p - low) / width)
	return min(max(idx, 0), BucketCount-1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
