package assortativity

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphstat/core"
)

// NeighborDegrees returns, for every vertex, the mean degree of its
// out-neighbors: (Σ_j A[i][j]·deg(j)) / deg(i). Isolated vertices (degree
// 0) score 0 — the numerator is empty, so the division is defined away
// instead of raised.
//
// Time: O(N+E).
func NeighborDegrees(g *core.Graph) []float64 {
	n := g.N()
	degrees := g.Degrees()
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		if degrees[i] == 0 {
			continue
		}
		sum := 0
		for _, j := range g.OutNeighbors(i) {
			sum += degrees[j]
		}
		values[i] = float64(sum) / float64(degrees[i])
	}

	return values
}

// ByDegree returns the incidence-weighted mean neighbor degree for every
// degree value present in g: each edge incident to a vertex of degree d
// contributes the neighbor's degree as one sample under key d. Degrees
// with zero incidences get no entry (see the package comment for the
// policy rationale).
//
// Time: O(N+E). Memory: O(E) for the per-degree sample lists.
func ByDegree(g *core.Graph) map[int]float64 {
	degrees := g.Degrees()
	samples := make(map[int][]float64)
	for i := 0; i < g.N(); i++ {
		d := degrees[i]
		for _, j := range g.OutNeighbors(i) {
			samples[d] = append(samples[d], float64(degrees[j]))
		}
	}

	result := make(map[int]float64, len(samples))
	for d, s := range samples {
		result[d] = stat.Mean(s, nil)
	}

	return result
}
