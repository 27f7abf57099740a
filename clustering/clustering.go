package clustering

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphstat/core"
)

// Sentinel errors for clustering computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clustering: graph is nil")

	// ErrDirectedGraph is returned when clustering is requested on a
	// directed graph; the coefficient is defined for undirected graphs only.
	ErrDirectedGraph = errors.New("clustering: directed graphs not supported")
)

// Coefficients returns the local clustering coefficient of every vertex:
// closed neighbor pairs over d(d−1)/2 possible pairs, 0 for degree ≤ 1.
// Returns ErrGraphNil or ErrDirectedGraph on invalid input.
//
// Time: O(Σ deg(i)²·log deg) via binary-searched adjacency probes.
// Memory: O(N) beyond the neighbor snapshots.
func Coefficients(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	n := g.N()
	coeffs := make([]float64, n)
	for i := 0; i < n; i++ {
		nbrs := g.OutNeighbors(i)
		d := len(nbrs)
		if d <= 1 {
			continue // cannot form a triangle; stays 0
		}
		closed := 0
		for a := 0; a < d; a++ {
			for b := a + 1; b < d; b++ {
				if g.HasEdge(nbrs[a], nbrs[b]) {
					closed++
				}
			}
		}
		coeffs[i] = float64(closed) / float64(d*(d-1)/2)
	}

	return coeffs, nil
}

// Average returns the arithmetic mean of local coefficients, always within
// [0,1]. The empty vector averages to 0 (degenerate input, not an error).
//
// Time: O(N).
func Average(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	return stat.Mean(coeffs, nil)
}
