// Package stats implements the per-frame percentile reduction.
package stats

import (
	"errors"
	"math"
)

// ErrNoSamples reports a reduction over an empty sample set.
var ErrNoSamples = errors.New("no samples to reduce")

// Percentile returns the value V such that p percent of the 8-bit samples
// are <= V, interpolating linearly between the two nearest order statistics
// when the rank p*(n-1)/100 is not integral. p must lie in [0, 100]; p=0
// yields the minimum sample, p=50 the median, p=100 the maximum.
//
// Sample values are bounded 8-bit intensities, so the order statistics come
// from a 256-bin histogram instead of a sort; the result is identical.
func Percentile(samples []uint8, p float64) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, ErrNoSamples
	}

	var counts [256]int
	for _, v := range samples {
		counts[v]++
	}

	rank := p / 100 * float64(n-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)

	lo := valueAtRank(&counts, lower)
	if frac == 0 {
		return float64(lo), nil
	}

	hi := valueAtRank(&counts, lower+1)
	return float64(lo) + frac*float64(hi-lo), nil
}

// valueAtRank returns the sample value at index k of the sorted sample
// sequence, read off the cumulative histogram.
func valueAtRank(counts *[256]int, k int) float64 {
	cum := 0
	for v, c := range counts {
		cum += c
		if k < cum {
			return float64(v)
		}
	}
	return 255
}
