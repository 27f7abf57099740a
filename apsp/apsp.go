package apsp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphstat/core"
)

// unvisited marks a vertex not yet reached by the per-source BFS.
const unvisited = -1

// Distances returns the N×N matrix of unweighted shortest-path lengths in
// g. Row i is the BFS distance from source i to every vertex, respecting
// direction on directed graphs; unreachable pairs hold Unreachable (+Inf)
// and the diagonal is always 0.
//
// Sources run concurrently under ctx, bounded by WithWorkers (default:
// GOMAXPROCS). Each source owns exactly one output row, so no locking is
// needed. Returns ErrGraphNil, ErrOptionViolation, or ctx's error on
// cancellation.
//
// Time: O(N·(N+E)). Memory: O(N²) for the result.
func Distances(ctx context.Context, g *core.Graph, opts ...Option) ([][]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.N()
	dist := make([][]float64, n)
	if n == 0 {
		return dist, nil
	}

	// Snapshot adjacency once; the fan-out below only reads it.
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = g.OutNeighbors(i)
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.workers)
	for src := 0; src < n; src++ {
		src := src
		grp.Go(func() error {
			// Cancellation check once per source; a single BFS has no
			// natural midpoint checkpoint.
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			dist[src] = bfsRow(adj, src)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return dist, nil
}

// bfsRow runs one unweighted BFS from src over adj and converts hop counts
// to float64, substituting Unreachable for vertices never dequeued.
func bfsRow(adj [][]int, src int) []float64 {
	n := len(adj)
	hops := make([]int, n)
	for i := range hops {
		hops[i] = unvisited
	}
	hops[src] = 0

	queue := make([]int, 0, n)
	queue = append(queue, src)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range adj[u] {
			if hops[v] == unvisited {
				hops[v] = hops[u] + 1
				queue = append(queue, v)
			}
		}
	}

	row := make([]float64, n)
	for i, h := range hops {
		if h == unvisited {
			row[i] = Unreachable
		} else {
			row[i] = float64(h)
		}
	}

	return row
}
