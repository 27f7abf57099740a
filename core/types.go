// Package core: Graph and Edge types, construction options, and sentinel
// errors. Algorithms live in sibling packages; this file only builds and
// freezes the adjacency structure.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder is returned when NewGraph receives n < 0.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange is returned when an edge endpoint falls outside [0, n).
	ErrVertexOutOfRange = errors.New("core: edge endpoint out of range")
)

// Edge is an endpoint pair over the dense vertex index space.
// For undirected graphs the pair is unordered; NewGraph normalizes it.
type Edge struct {
	U int
	V int
}

// Option configures a Graph before construction.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected builds a directed graph: each Edge{U,V} is the arc U→V
// and is not mirrored.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// Graph is an immutable view over n vertices and a set of edges.
//
// Adjacency lists are sorted ascending and exclude self-loops; loops are
// tracked separately so EdgeCount still reflects them. in aliases out for
// undirected graphs.
type Graph struct {
	n         int
	directed  bool
	edgeCount int

	out   [][]int // sorted loop-free out-neighbors
	in    [][]int // sorted loop-free in-neighbors; == out when undirected
	loops []bool  // loops[i] reports a self-loop at i
}

// NewGraph builds an immutable Graph over vertices 0..n-1 from edges.
//
// Duplicate edges collapse (first-edge-wins; undirected pairs are
// normalized to {min,max} first). Self-loops are accepted, counted in
// EdgeCount, and excluded from adjacency. Returns ErrNegativeOrder or
// ErrVertexOutOfRange on invalid input.
//
// Complexity: O(n + E·log E) time, O(n + E) space.
func NewGraph(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeOrder)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		n:        n,
		directed: cfg.directed,
		out:      make([][]int, n),
		loops:    make([]bool, n),
	}

	// Dedup sets: one per source vertex, loop flags aside.
	seen := make([]map[int]struct{}, n)
	for idx, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge #%d (%d,%d) outside [0,%d): %w",
				idx, e.U, e.V, n, ErrVertexOutOfRange)
		}
		u, v := e.U, e.V
		if !cfg.directed && u > v {
			u, v = v, u // normalize unordered pair
		}
		if u == v {
			if !g.loops[u] {
				g.loops[u] = true
				g.edgeCount++
			}
			continue
		}
		if seen[u] == nil {
			seen[u] = make(map[int]struct{})
		}
		if _, dup := seen[u][v]; dup {
			continue // first-edge-wins
		}
		seen[u][v] = struct{}{}
		g.edgeCount++
		g.out[u] = append(g.out[u], v)
		if !cfg.directed {
			g.out[v] = append(g.out[v], u)
		}
	}

	// Directed graphs need reverse adjacency for weak reachability.
	if cfg.directed {
		g.in = make([][]int, n)
		for u := range g.out {
			for _, v := range g.out[u] {
				g.in[v] = append(g.in[v], u)
			}
		}
	} else {
		g.in = g.out
	}

	// Sorted lists give deterministic iteration order everywhere downstream.
	for i := 0; i < n; i++ {
		sort.Ints(g.out[i])
		if cfg.directed {
			sort.Ints(g.in[i])
		}
	}

	return g, nil
}
