// Package metrics is the engine's entry point: Compute runs every
// calculator over one immutable core.Graph and assembles a single
// immutable Result.
//
// Calculators run in dependency order — connectivity, distances,
// clustering and degrees, spectral, closeness, distance distribution,
// assortativity. Per-field omissions are non-fatal and expressed as nil:
// Clusterings is nil for directed graphs (the coefficient is undefined
// there), DistanceDistribution is nil unless the graph is fully
// connected. Spectral failures are fatal to the whole call, wrapped with
// the graph's size and directedness for diagnosis; the computation is
// deterministic, so retrying without changing the input cannot succeed.
//
// A Result is never mutated after Compute returns and is safe to share
// across concurrent readers without synchronization.
package metrics
