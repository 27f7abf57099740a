package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/apsp"
	"github.com/katalvlaran/graphstat/assortativity"
	"github.com/katalvlaran/graphstat/centrality"
	"github.com/katalvlaran/graphstat/clustering"
	"github.com/katalvlaran/graphstat/connectivity"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/spectral"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Compute.
var ErrGraphNil = errors.New("metrics: graph is nil")

// Option configures Compute via functional arguments.
type Option func(*options)

type options struct {
	apspOpts []apsp.Option
}

// WithWorkers caps the number of concurrent BFS sources in the
// shortest-path step; it is forwarded to apsp.Distances, which validates
// the value.
func WithWorkers(w int) Option {
	return func(o *options) { o.apspOpts = append(o.apspOpts, apsp.WithWorkers(w)) }
}

// Result is the immutable metrics bundle produced by Compute.
//
// Nil means absent, never empty: Clusterings is nil when the graph is
// directed, DistanceDistribution is nil when the graph is not fully
// connected. Callers must not treat absence as zero-filled data.
type Result struct {
	// Directed mirrors the input graph's orientation flag.
	Directed bool

	// FullyConnected is strong connectivity for directed graphs, single
	// weak component for undirected ones.
	FullyConnected bool

	// NodeCount and EdgeCount describe the input topology; EdgeCount
	// includes self-loops, with undirected pairs counted once.
	NodeCount int
	EdgeCount int

	// Distances[i][j] is the unweighted shortest-path length i→j, +Inf
	// when unreachable, always 0 on the diagonal.
	Distances [][]float64

	// Diameter is the maximum distance (+Inf iff not fully connected).
	Diameter float64

	// AvgPathLength averages every ordered off-diagonal pair; one
	// unreachable pair makes it +Inf, and N ≤ 1 makes it NaN.
	AvgPathLength float64

	// Clusterings holds local clustering coefficients; nil for directed
	// graphs. AvgClustering is their mean (0 when absent).
	Clusterings   []float64
	AvgClustering float64

	// MaxEigenvalue and EigenCentralities form the dominant eigenpair of
	// the loop-free adjacency matrix, sign-normalized, unit 2-norm.
	MaxEigenvalue     float64
	EigenCentralities []float64

	// Degrees are loop-free row sums; DegreeCentralities scale them by
	// N−1; Closeness is (N−1) over the distance row sum, 0 on +Inf rows.
	Degrees            []int
	DegreeCentralities []float64
	Closeness          []float64

	// DistanceDistribution buckets finite distances 1..diameter; nil when
	// the graph is not fully connected (undefined, not empty).
	DistanceDistribution []apsp.Bucket

	// NeighborDegrees is the mean neighbor degree per vertex;
	// NeighborDegreesByDegree aggregates it per degree value with
	// incidence weighting (no entry for degrees without incidences).
	NeighborDegrees         []float64
	NeighborDegreesByDegree map[int]float64
}

// Compute derives the full metrics bundle from g. The graph is only read;
// two calls on the same graph produce identical Results.
//
// ctx bounds the parallel shortest-path fan-out. Errors: ErrGraphNil,
// apsp.ErrOptionViolation, ctx cancellation, or a fatal spectral failure
// (spectral.ErrEigenFailed / spectral.ErrComplexDominant) wrapped with
// graph context. Clustering being unsupported on directed graphs is not
// an error: the fields stay nil.
//
// Time: O(N³) — the eigendecomposition dominates. Memory: O(N²).
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Directed:  g.Directed(),
		NodeCount: g.N(),
		EdgeCount: g.EdgeCount(),
		Degrees:   g.Degrees(),
	}

	// Connectivity gate: decides the distribution and the diameter regime.
	res.FullyConnected = connectivity.IsConnected(g)

	// All-pairs distances and their scalar derivatives.
	dist, err := apsp.Distances(ctx, g, o.apspOpts...)
	if err != nil {
		return nil, fmt.Errorf("metrics: shortest paths: %w", err)
	}
	res.Distances = dist
	res.Diameter = apsp.Diameter(dist)
	res.AvgPathLength = apsp.AverageLength(dist)

	// Clustering: undirected only; directed graphs omit the field.
	if !g.Directed() {
		coeffs, cerr := clustering.Coefficients(g)
		if cerr != nil {
			return nil, fmt.Errorf("metrics: clustering: %w", cerr)
		}
		res.Clusterings = coeffs
		res.AvgClustering = clustering.Average(coeffs)
	}

	// Spectral step: the only fatal numeric stage.
	value, vector, err := spectral.DominantEigen(g)
	if err != nil {
		return nil, fmt.Errorf("metrics: spectral centrality (n=%d, directed=%t): %w",
			g.N(), g.Directed(), err)
	}
	res.MaxEigenvalue = value
	res.EigenCentralities = vector

	res.DegreeCentralities = centrality.Degree(g)
	res.Closeness = centrality.Closeness(dist)

	// Distribution only exists for fully connected graphs.
	if res.FullyConnected {
		buckets, derr := apsp.Distribution(dist, g.Directed())
		if derr != nil {
			return nil, fmt.Errorf("metrics: distance distribution: %w", derr)
		}
		res.DistanceDistribution = buckets
	}

	res.NeighborDegrees = assortativity.NeighborDegrees(g)
	res.NeighborDegreesByDegree = assortativity.ByDegree(g)

	return res, nil
}
