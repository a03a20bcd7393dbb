package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duograph/core"
	"github.com/katalvlaran/duograph/dijkstra"
	"github.com/katalvlaran/duograph/matrix"
)

// roadNet builds a weighted digraph with one clearly cheapest route
// and one isolated node:
//
//	a→b:4  a→c:1  c→b:2  b→d:5  c→d:8  d→e:3    f isolated
//
// Best costs from a: a=0, c=1, b=3 (via c), d=8 (via c,b), e=11.
func roadNet(t *testing.T) *matrix.WeightedDiGraph[string] {
	t.Helper()
	g := matrix.NewWeightedDiGraph[string]()
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		g.AddNode(v)
	}
	edges := []struct {
		from, to core.NodeIndex
		w        int64
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 5}, {2, 3, 8}, {3, 4, 3},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}
	return g
}

func TestDijkstraSettlesCheapestPredecessors(t *testing.T) {
	prev, err := dijkstra.Dijkstra(roadNet(t), 0)
	require.NoError(t, err)

	want := dijkstra.PredecessorMap{
		0: core.NoNode,
		2: 0,
		1: 2, // the 1+2 route beats the direct weight-4 edge
		3: 1,
		4: 3,
	}
	assert.Equal(t, want, prev)
}

func TestDijkstraLeavesUnreachableNodesOut(t *testing.T) {
	prev, err := dijkstra.Dijkstra(roadNet(t), 0)
	require.NoError(t, err)

	assert.NotContains(t, prev, core.NodeIndex(5))
	assert.Nil(t, dijkstra.PathTo(prev, 0, 5))
}

func TestDijkstraMaxCostBoundsTheRadius(t *testing.T) {
	g := roadNet(t)

	// e costs 11, everything else at most 8.
	prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxCost(8))
	require.NoError(t, err)
	assert.NotContains(t, prev, core.NodeIndex(4))
	assert.Contains(t, prev, core.NodeIndex(3))

	// The bound is inclusive: b settles at exactly 3.
	prev, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxCost(3))
	require.NoError(t, err)
	assert.Contains(t, prev, core.NodeIndex(1))
	assert.NotContains(t, prev, core.NodeIndex(3))
}

func TestDijkstraTargetStopsAtSettle(t *testing.T) {
	g := roadNet(t)

	prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(3))
	require.NoError(t, err)

	path := dijkstra.PathTo(prev, 0, 3)
	assert.Equal(t, []core.NodeIndex{0, 2, 1, 3}, path)

	// d's row was never relaxed, so e stayed undiscovered.
	assert.NotContains(t, prev, core.NodeIndex(4))

	// The early exit returns the same route the full search finds.
	full, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PathTo(full, 0, 3), path)

	var cost int64
	for i := 1; i < len(path); i++ {
		w, err := g.EdgeWeight(path[i-1], path[i])
		require.NoError(t, err)
		cost += w
	}
	assert.Equal(t, int64(8), cost)
}

func TestDijkstraTargetEqualsStart(t *testing.T) {
	prev, err := dijkstra.Dijkstra(roadNet(t), 2, dijkstra.WithTarget(2))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.PredecessorMap{2: core.NoNode}, prev)
	assert.Equal(t, []core.NodeIndex{2}, dijkstra.PathTo(prev, 2, 2))
}

func TestDijkstraOnUndirectedWeighted(t *testing.T) {
	g := matrix.NewWeightedGraph[string]()
	for _, v := range []string{"a", "b", "c"} {
		g.AddNode(v)
	}
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(0, 2, 20))

	// Symmetric edges: the two-hop route wins from either endpoint.
	prev, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{2, 1, 0}, dijkstra.PathTo(prev, 2, 0))
}

func TestDijkstraRejectsNilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstraRejectsOutOfRangeIndices(t *testing.T) {
	g := roadNet(t)

	_, err := dijkstra.Dijkstra(g, 42)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(42))
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestDijkstraRejectsNegativeMaxCost(t *testing.T) {
	_, err := dijkstra.Dijkstra(roadNet(t), 0, dijkstra.WithMaxCost(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// rowGraph hands Dijkstra raw rows, standing in for a foreign Graph
// implementation the matrix types would never produce.
type rowGraph [][]int64

func (r rowGraph) NodeCount() int                        { return len(r) }
func (r rowGraph) Row(u core.NodeIndex) ([]int64, error) { return r[u], nil }

func TestDijkstraRejectsNegativeWeights(t *testing.T) {
	g := rowGraph{
		{0, 3},
		{-1, 0},
	}
	_, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstraTreatsZeroCellsAsAbsent(t *testing.T) {
	g := rowGraph{
		{0, 0},
		{0, 0},
	}
	prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PredecessorMap{0: core.NoNode}, prev)
}
