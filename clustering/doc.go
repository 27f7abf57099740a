// Package clustering computes local and average clustering coefficients
// for undirected core.Graphs.
//
// The local coefficient of a vertex is the fraction of its neighbor pairs
// that are themselves adjacent; vertices of degree ≤ 1 cannot close a
// triangle and score exactly 0. Self-loops never participate: the core
// adjacency is loop-free by construction.
//
// Directed graphs are rejected with ErrDirectedGraph — the metric is
// undefined for them, and callers (the metrics orchestrator included)
// omit the field rather than abort.
package clustering
