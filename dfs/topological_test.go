package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build creates a Digraph from an edge list.
func build(t *testing.T, edges ...[2]string) *core.Digraph[string] {
	t.Helper()
	g := core.NewDigraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalOrder[string](nil, "A")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_LoneStart covers a start vertex with no outgoing edges.
func TestTopo_LoneStart(t *testing.T) {
	g := core.NewDigraph[string]()
	order, err := dfs.TopologicalOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	order, err := dfs.TopologicalOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_OnlyReachable checks that vertices upstream of start are excluded.
func TestTopo_OnlyReachable(t *testing.T) {
	g := build(t, [2]string{"X", "A"}, [2]string{"A", "B"})
	order, err := dfs.TopologicalOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

// TestTopo_DiamondDAG checks every edge points forward in the order.
func TestTopo_DiamondDAG(t *testing.T) {
	edges := [][2]string{{"S", "A"}, {"S", "B"}, {"A", "C"}, {"B", "C"}, {"A", "D"}, {"C", "T"}, {"D", "T"}}
	g := build(t, edges...)
	order, err := dfs.TopologicalOrder[string](g, "S")
	require.NoError(t, err)
	assert.Len(t, order, 6)
	assert.Equal(t, "S", order[0])
	assert.Equal(t, "T", order[len(order)-1])
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "edge %s→%s", e[0], e[1])
	}
}

// TestTopo_Cycle ensures a reachable cycle returns ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	order, err := dfs.TopologicalOrder[string](g, "A")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_SelfLoop is the smallest possible cycle.
func TestTopo_SelfLoop(t *testing.T) {
	g := build(t, [2]string{"A", "A"})
	_, err := dfs.TopologicalOrder[string](g, "A")
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_UnreachableCycleIgnored shows cycles outside the reachable set do not matter.
func TestTopo_UnreachableCycleIgnored(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"X", "Y"}, [2]string{"Y", "X"})
	order, err := dfs.TopologicalOrder[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

// TestTopo_LongChainNoRecursion walks a 200k-vertex implicit chain.
func TestTopo_LongChainNoRecursion(t *testing.T) {
	const n = 200000
	chain := core.GraphFunc[int](func(v int) []core.Edge[int] {
		if v+1 >= n {
			return nil
		}
		return []core.Edge[int]{{From: v, To: v + 1}}
	})
	order, err := dfs.TopologicalOrder[int](chain, 0)
	require.NoError(t, err)
	require.Len(t, order, n)
	assert.Equal(t, 0, order[0])
	assert.Equal(t, n-1, order[n-1])
}
