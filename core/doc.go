// Package core defines the immutable Graph value type consumed by every
// calculator in graphstat.
//
// A Graph is built once from a dense 0-based vertex index space and a set
// of endpoint pairs, then never mutated: all accessors are read-only and
// return copies, so a Graph may be shared across goroutines without
// locking.
//
// Construction policy (deterministic, no ambient state):
//   - Endpoints must lie in [0, n); out-of-range endpoints are rejected
//     with ErrVertexOutOfRange.
//   - Parallel edges collapse under first-edge-wins; undirected pairs are
//     normalized to {min,max} before deduplication.
//   - Self-loops are legal input. They count toward EdgeCount but are kept
//     off the adjacency lists, degrees, and the adjacency matrix diagonal,
//     because no structural metric downstream is loop-bearing.
package core
