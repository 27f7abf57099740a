// Package build provides deterministic constructors for canonical graph
// topologies (complete, path, cycle, star) over the dense-index core.Graph.
//
// The constructors exist for callers and tests that need well-known
// fixtures with analytically known metrics; they emit edges in a fixed
// lexicographic order, so two invocations always produce identical graphs.
package build
