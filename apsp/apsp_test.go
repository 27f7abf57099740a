package apsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/apsp"
	"github.com/katalvlaran/graphstat/build"
	"github.com/katalvlaran/graphstat/core"
)

func TestDistances_Errors(t *testing.T) {
	_, err := apsp.Distances(context.Background(), nil)
	require.ErrorIs(t, err, apsp.ErrGraphNil)

	g, err := build.Path(3)
	require.NoError(t, err)
	_, err = apsp.Distances(context.Background(), g, apsp.WithWorkers(0))
	require.ErrorIs(t, err, apsp.ErrOptionViolation)
}

func TestDistances_Cancellation(t *testing.T) {
	g, err := build.Complete(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = apsp.Distances(ctx, g, apsp.WithWorkers(1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDistances_PathGraph(t *testing.T) {
	g, err := build.Path(4)
	require.NoError(t, err)

	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)

	want := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	require.Equal(t, want, dist)
	require.Equal(t, 3.0, apsp.Diameter(dist))
	require.InDelta(t, 20.0/12.0, apsp.AverageLength(dist), 1e-12)
}

func TestDistances_Symmetric(t *testing.T) {
	g, err := build.Cycle(6)
	require.NoError(t, err)

	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)
	for i := range dist {
		require.Equal(t, 0.0, dist[i][i])
		for j := range dist[i] {
			require.Equal(t, dist[j][i], dist[i][j])
		}
	}
}

func TestDistances_DirectedRespectsOrientation(t *testing.T) {
	g, err := build.Path(3, core.WithDirected())
	require.NoError(t, err)

	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 1, 2}, dist[0])
	require.True(t, math.IsInf(dist[1][0], 1))
	require.True(t, math.IsInf(dist[2][0], 1))
	require.True(t, math.IsInf(apsp.Diameter(dist), 1))
	require.True(t, math.IsInf(apsp.AverageLength(dist), 1))
}

func TestDistances_SelfLoopDoesNotShiftDiagonal(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{{U: 0, V: 0}, {U: 0, V: 1}})
	require.NoError(t, err)

	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, dist)
}

func TestDistances_WorkerCountIsObservationallyIrrelevant(t *testing.T) {
	g, err := build.Cycle(9)
	require.NoError(t, err)

	serial, err := apsp.Distances(context.Background(), g, apsp.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := apsp.Distances(context.Background(), g, apsp.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestAverageLength_Degenerate(t *testing.T) {
	require.True(t, math.IsNaN(apsp.AverageLength(nil)))
	require.True(t, math.IsNaN(apsp.AverageLength([][]float64{{0}})))
	require.Equal(t, 0.0, apsp.Diameter([][]float64{{0}}))
	require.Equal(t, 0.0, apsp.Diameter(nil))
}

func TestDistribution_UndirectedCountsUnorderedPairs(t *testing.T) {
	g, err := build.Cycle(5)
	require.NoError(t, err)
	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)

	buckets, err := apsp.Distribution(dist, false)
	require.NoError(t, err)
	require.Equal(t, []apsp.Bucket{
		{Distance: 1, Pairs: 5},
		{Distance: 2, Pairs: 5},
	}, buckets)

	// Counts sum to C(N,2).
	total := 0
	for _, b := range buckets {
		total += b.Pairs
	}
	require.Equal(t, 10, total)
}

func TestDistribution_DirectedCountsOrderedPairs(t *testing.T) {
	g, err := build.Cycle(4, core.WithDirected())
	require.NoError(t, err)
	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)

	buckets, err := apsp.Distribution(dist, true)
	require.NoError(t, err)
	require.Equal(t, []apsp.Bucket{
		{Distance: 1, Pairs: 4},
		{Distance: 2, Pairs: 4},
		{Distance: 3, Pairs: 4},
	}, buckets)

	// Counts sum to N(N−1).
	total := 0
	for _, b := range buckets {
		total += b.Pairs
	}
	require.Equal(t, 12, total)
}

func TestDistribution_DisconnectedIsUndefined(t *testing.T) {
	g, err := core.NewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	dist, err := apsp.Distances(context.Background(), g)
	require.NoError(t, err)

	_, err = apsp.Distribution(dist, false)
	require.ErrorIs(t, err, apsp.ErrDisconnected)
}

func TestDistribution_Degenerate(t *testing.T) {
	buckets, err := apsp.Distribution([][]float64{{0}}, false)
	require.NoError(t, err)
	require.NotNil(t, buckets)
	require.Empty(t, buckets)

	_, err = apsp.Distribution([][]float64{{0, 1}}, false)
	require.ErrorIs(t, err, apsp.ErrRaggedMatrix)
}
