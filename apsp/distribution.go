package apsp

import "fmt"

// Distribution builds the histogram of shortest-path lengths from a fully
// connected distance matrix: one Bucket per integer distance 1..diameter,
// in ascending order. Undirected matrices count each unordered pair once
// (upper triangle, i<j); directed matrices count every ordered pair i≠j.
//
// Returns ErrDisconnected if any pair is unreachable — callers must treat
// the histogram as undefined for disconnected graphs, not as empty — and
// ErrRaggedMatrix if dist is not square. An empty (but non-nil) slice is
// returned for N ≤ 1, where the graph is vacuously connected.
//
// Time: O(N²). Memory: O(diameter).
func Distribution(dist [][]float64, directed bool) ([]Bucket, error) {
	n := len(dist)
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("Distribution: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrRaggedMatrix)
		}
	}

	// First pass: reject unreachable pairs and find the diameter.
	maxD := 0
	for i, row := range dist {
		for j, d := range row {
			if i == j {
				continue
			}
			if d == Unreachable {
				return nil, fmt.Errorf("Distribution: pair (%d,%d): %w", i, j, ErrDisconnected)
			}
			if int(d) > maxD {
				maxD = int(d)
			}
		}
	}

	counts := make([]int, maxD+1)
	for i, row := range dist {
		for j, d := range row {
			if i == j {
				continue
			}
			if !directed && j < i {
				continue // upper triangle only
			}
			counts[int(d)]++
		}
	}

	buckets := make([]Bucket, 0, maxD)
	for d := 1; d <= maxD; d++ {
		buckets = append(buckets, Bucket{Distance: d, Pairs: counts[d]})
	}

	return buckets, nil
}
