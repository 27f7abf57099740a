// Package connectivity partitions a core.Graph into components.
//
// Two notions are supported:
//   - Weak components: reachability ignoring edge direction (for an
//     undirected graph these are the plain connected components).
//   - Strong components: mutual reachability respecting direction,
//     computed by an iterative Tarjan pass.
//
// IsConnected follows the engine-wide convention: a directed graph counts
// as fully connected only when it is strongly connected.
//
// Labels are deterministic: components are numbered by the smallest vertex
// index they contain, in ascending order. Beyond that, label equality is
// the only contract.
package connectivity
