package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/build"
	"github.com/katalvlaran/graphstat/connectivity"
	"github.com/katalvlaran/graphstat/core"
)

func TestComponents_Undirected(t *testing.T) {
	// Two disjoint edges: 0-1 and 2-3.
	g, err := core.NewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	labels, count := connectivity.Components(g)
	require.Equal(t, 2, count)
	require.Equal(t, []int{0, 0, 1, 1}, labels)
	require.False(t, connectivity.IsConnected(g))
}

func TestComponents_SingleComponent(t *testing.T) {
	g, err := build.Cycle(5)
	require.NoError(t, err)

	labels, count := connectivity.Components(g)
	require.Equal(t, 1, count)
	for _, l := range labels {
		require.Equal(t, 0, l)
	}
	require.True(t, connectivity.IsConnected(g))
}

func TestComponents_IsolatedVertices(t *testing.T) {
	g, err := core.NewGraph(3, nil)
	require.NoError(t, err)

	labels, count := connectivity.Components(g)
	require.Equal(t, 3, count)
	require.Equal(t, []int{0, 1, 2}, labels)
}

func TestStrongComponents_DirectedChain(t *testing.T) {
	// 0→1→2 is weakly connected but each vertex is its own SCC.
	g, err := build.Path(3, core.WithDirected())
	require.NoError(t, err)

	_, weak := connectivity.Components(g)
	require.Equal(t, 1, weak)

	labels, strong := connectivity.StrongComponents(g)
	require.Equal(t, 3, strong)
	require.Equal(t, []int{0, 1, 2}, labels)
	require.False(t, connectivity.IsConnected(g))
}

func TestStrongComponents_DirectedCycle(t *testing.T) {
	g, err := build.Cycle(4, core.WithDirected())
	require.NoError(t, err)

	labels, count := connectivity.StrongComponents(g)
	require.Equal(t, 1, count)
	require.Equal(t, []int{0, 0, 0, 0}, labels)
	require.True(t, connectivity.IsConnected(g))
}

func TestStrongComponents_MixedSCCs(t *testing.T) {
	// 0↔1 form one SCC; 2 hangs off via 1→2.
	g, err := core.NewGraph(3, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 0}, {U: 1, V: 2},
	}, core.WithDirected())
	require.NoError(t, err)

	labels, count := connectivity.StrongComponents(g)
	require.Equal(t, 2, count)
	require.Equal(t, labels[0], labels[1])
	require.NotEqual(t, labels[0], labels[2])
	// Smallest-member ordering: the SCC containing vertex 0 gets label 0.
	require.Equal(t, 0, labels[0])
}

func TestStrongComponents_UndirectedMatchesWeak(t *testing.T) {
	g, err := core.NewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	weakLabels, weak := connectivity.Components(g)
	strongLabels, strong := connectivity.StrongComponents(g)
	require.Equal(t, weak, strong)
	require.Equal(t, weakLabels, strongLabels)
}

func TestIsConnected_Degenerate(t *testing.T) {
	g0, err := core.NewGraph(0, nil)
	require.NoError(t, err)
	require.True(t, connectivity.IsConnected(g0))

	g1, err := core.NewGraph(1, nil)
	require.NoError(t, err)
	require.True(t, connectivity.IsConnected(g1))
}
