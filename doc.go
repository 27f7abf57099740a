// Package graphstat turns a raw adjacency structure into a reproducible
// bundle of structural graph metrics.
//
// 🚀 What is graphstat?
//
//	A pure-Go metrics engine for unweighted graphs, directed or not:
//		• Connectivity: weak & strong components, full-connectivity flag
//		• Shortest paths: all-pairs BFS distance matrix, diameter, mean path length
//		• Clustering: local & average coefficients (undirected)
//		• Spectral: dominant eigenpair of the adjacency matrix (via gonum)
//		• Centrality: degree, closeness, eigenvector
//		• Distance distribution: histogram of finite path lengths
//		• Assortativity: neighbor-degree statistics, per node and per degree
//
// ✨ Design
//
//   - One immutable Graph value in, one immutable Result out — no ambient
//     state, safe to share across goroutines without locks
//   - Per-field omission instead of failure where a metric is undefined
//     (clustering on directed graphs, distribution on disconnected ones)
//   - Deterministic: two runs over one graph give identical results
//
// Package map:
//
//	core/          — immutable dense-index Graph and adjacency queries
//	build/         — deterministic fixture topologies (complete, path, cycle, star)
//	connectivity/  — weak components & Tarjan strong components
//	apsp/          — parallel all-pairs BFS, diameter, distribution
//	clustering/    — local & average clustering coefficients
//	spectral/      — dominant eigenpair (gonum/mat) with sign policy
//	centrality/    — degree & closeness centrality
//	assortativity/ — neighbor-degree statistics
//	metrics/       — Compute(ctx, g) → *Result, the single entry point
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │        K4: diameter 1, clustering 1,
//	    2───3        dominant eigenvalue 3
//
// Start with metrics.Compute; reach into the subpackages when you need a
// single calculator on its own.
package graphstat
