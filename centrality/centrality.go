package centrality

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// Degree returns degree/(N−1) for every vertex — the loop-free degree
// scaled by the maximum possible degree of a simple graph on N vertices.
// All zeros when N ≤ 1.
//
// Time: O(N).
func Degree(g *core.Graph) []float64 {
	n := g.N()
	values := make([]float64, n)
	if n <= 1 {
		return values
	}
	for i, d := range g.Degrees() {
		values[i] = float64(d) / float64(n-1)
	}

	return values
}

// Closeness returns (N−1)/Σ_j dist[i][j] for every row of the distance
// matrix. Rows containing an unreachable pair (+Inf) yield 0: the vertex
// cannot reach the whole graph, so its closeness is defined away rather
// than reported as an error. All zeros when N ≤ 1.
//
// Time: O(N²).
func Closeness(dist [][]float64) []float64 {
	n := len(dist)
	values := make([]float64, n)
	if n <= 1 {
		return values
	}
	for i, row := range dist {
		sum := 0.0
		for _, d := range row {
			sum += d
		}
		if math.IsInf(sum, 1) || sum == 0 {
			continue // unreachable row (or degenerate all-zero row) stays 0
		}
		values[i] = float64(n-1) / sum
	}

	return values
}
