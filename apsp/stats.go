package apsp

import "math"

// Diameter returns the maximum entry of the distance matrix: +Inf as soon
// as any pair is unreachable, 0 for matrices with no off-diagonal entries
// (N ≤ 1).
//
// Time: O(N²).
func Diameter(dist [][]float64) float64 {
	max := 0.0
	for _, row := range dist {
		for _, d := range row {
			if d > max {
				max = d
			}
		}
	}

	return max
}

// AverageLength returns the mean distance over all ordered off-diagonal
// pairs: sum / N(N−1). Any unreachable pair makes the sum — and so the
// average — +Inf (the strict all-pairs convention; reachable-only
// averaging is deliberately not offered). With fewer than two vertices
// there are no pairs and the result is NaN.
//
// Time: O(N²).
func AverageLength(dist [][]float64) float64 {
	n := len(dist)
	if n < 2 {
		return math.NaN()
	}
	sum := 0.0
	for i, row := range dist {
		for j, d := range row {
			if i == j {
				continue
			}
			sum += d
		}
	}

	return sum / float64(n*(n-1))
}
