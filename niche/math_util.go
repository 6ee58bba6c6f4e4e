package niche

import (
	"fmt"
	"math"
)

// clamp restricts a value to a given range [minVal, maxVal].
func clamp(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}

// sumInts returns the total of an offspring vector.
func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// checkPayoffs rejects payoffs that cannot serve as a Poisson rate.
func checkPayoffs(payoffs []float64) error {
	for i, p := range payoffs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: individual %d has payoff %v", ErrInvalidPayoff, i, p)
		}
	}
	return nil
}

// positiveIndices lists the indices with a strictly positive count.
func positiveIndices(values []int) []int {
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if v > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// allIndices returns 0..n-1.
func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
