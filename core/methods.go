package core

import "sort"

// N returns the number of vertices.
// Complexity: O(1).
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of distinct edges, self-loops included.
// Undirected pairs count once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges carry direction.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// OutNeighbors returns the sorted loop-free out-neighbors of i as a fresh
// slice. For undirected graphs this is the full neighborhood.
// Complexity: O(deg(i)).
func (g *Graph) OutNeighbors(i int) []int {
	return append([]int(nil), g.out[i]...)
}

// InNeighbors returns the sorted loop-free in-neighbors of i as a fresh
// slice. Identical to OutNeighbors for undirected graphs.
// Complexity: O(deg(i)).
func (g *Graph) InNeighbors(i int) []int {
	return append([]int(nil), g.in[i]...)
}

// HasEdge reports whether the edge (u,v) exists. For u == v it reports a
// self-loop; otherwise it consults the loop-free adjacency, so direction
// matters on directed graphs.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v {
		return g.loops[u]
	}
	row := g.out[u]
	k := sort.SearchInts(row, v)

	return k < len(row) && row[k] == v
}

// HasLoop reports whether vertex i carries a self-loop.
// Complexity: O(1).
func (g *Graph) HasLoop(i int) bool { return g.loops[i] }

// Degree returns the loop-free row sum for vertex i: the out-degree on
// directed graphs, the plain degree on undirected ones. This is the
// degree convention every downstream calculator uses.
// Complexity: O(1).
func (g *Graph) Degree(i int) int { return len(g.out[i]) }

// Degrees returns all loop-free degrees as a fresh slice.
// Complexity: O(n).
func (g *Graph) Degrees() []int {
	d := make([]int, g.n)
	for i := range d {
		d[i] = len(g.out[i])
	}

	return d
}
