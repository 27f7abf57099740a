// Package build: constructors for canonical topologies.
//
// Contract (shared by every constructor):
//   - n below the topology's minimum yields ErrTooFewVertices.
//   - Vertices are 0..n-1; edges are emitted lexicographically by (i,j), i<j.
//   - Constructors return only sentinel-wrapped errors; they never panic.
package build

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// ErrTooFewVertices is returned when n is below the topology's minimum.
var ErrTooFewVertices = errors.New("build: too few vertices")

// Topology minima (no magic numbers at call sites).
const (
	minCompleteNodes = 1
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
)

// Complete builds the complete simple graph K_n: every unordered pair
// {i,j}, i<j, is an edge.
// Complexity: O(n²).
func Complete(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{U: i, V: j})
		}
	}

	return core.NewGraph(n, edges, opts...)
}

// Path builds the path graph P_n: edges i—(i+1) for 0 ≤ i < n-1.
// With core.WithDirected the arcs all point forward along the path.
// Complexity: O(n).
func Path(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}

	return core.NewGraph(n, edges, opts...)
}

// Cycle builds the cycle graph C_n: the path closed by the edge (n-1)—0.
// Undirected C_n is 2-regular, which makes it a handy assortativity fixture.
// Complexity: O(n).
func Cycle(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}
	edges = append(edges, core.Edge{U: n - 1, V: 0})

	return core.NewGraph(n, edges, opts...)
}

// Star builds the star graph S_n: vertex 0 is the hub, joined to every
// other vertex.
// Complexity: O(n).
func Star(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: 0, V: i})
	}

	return core.NewGraph(n, edges, opts...)
}
