package core

import "gonum.org/v1/gonum/mat"

// AdjacencyMatrix exports the {0,1} adjacency matrix with a zero diagonal
// (self-loops removed). The matrix is symmetric for undirected graphs and
// freshly allocated on every call; mutating it does not touch the Graph.
//
// Returns nil for the empty graph: gonum rejects zero-sized matrices, and
// no caller has anything to decompose at n == 0.
//
// Complexity: O(n²) time and space.
func (g *Graph) AdjacencyMatrix() *mat.Dense {
	if g.n == 0 {
		return nil
	}
	a := mat.NewDense(g.n, g.n, nil)
	for u := range g.out {
		for _, v := range g.out[u] {
			a.Set(u, v, 1)
		}
	}

	return a
}
