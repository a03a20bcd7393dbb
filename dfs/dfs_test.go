package dfs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duograph/bfs"
	"github.com/katalvlaran/duograph/core"
	"github.com/katalvlaran/duograph/dfs"
	"github.com/katalvlaran/duograph/matrix"
)

// diamond wires 0→2, 0→1, 1→3, 2→4. Insertion order and ascending
// order disagree at node 0, which makes the two representations
// produce different pre-orders from the same edge set.
func diamondList(t *testing.T) *core.DiGraph[int, uint] {
	t.Helper()
	g := core.NewDiGraph[int, uint]()
	for i := 0; i < 5; i++ {
		g.AddNode(i)
	}
	for _, e := range [][2]core.NodeIndex{{0, 2}, {0, 1}, {1, 3}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	return g
}

func diamondMatrix(t *testing.T) *matrix.DiGraph[int] {
	t.Helper()
	g := matrix.NewDiGraph[int]()
	for i := 0; i < 5; i++ {
		g.AddNode(i)
	}
	for _, e := range [][2]core.NodeIndex{{0, 2}, {0, 1}, {1, 3}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestDFSListPreOrderFollowsInsertion(t *testing.T) {
	seq, err := dfs.DFS(diamondList(t), 0)
	require.NoError(t, err)

	// 2 was inserted before 1, so its whole subtree comes first.
	assert.Equal(t, []core.NodeIndex{0, 2, 4, 1, 3}, seq.Collect())
}

func TestDFSMatrixPreOrderFollowsAscendingIndex(t *testing.T) {
	seq, err := dfs.DFS(diamondMatrix(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeIndex{0, 1, 3, 2, 4}, seq.Collect())
}

func TestDFSExploresDepthBeforeBreadth(t *testing.T) {
	// 0→1→2→3 plus shortcut 0→3: depth-first reaches 3 through the
	// chain, breadth-first would reach it through the shortcut.
	g := core.NewDiGraph[int, uint]()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))

	seq, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{0, 1, 2, 3}, seq.Collect())
}

func TestDFSVisitsCyclesOnce(t *testing.T) {
	g := core.NewDiGraph[int, uint]()
	for i := 0; i < 3; i++ {
		g.AddNode(i)
	}
	for _, e := range [][2]core.NodeIndex{{0, 1}, {1, 2}, {2, 0}, {0, 1}, {1, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	seq, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	counts := map[core.NodeIndex]int{}
	for u := range seq {
		counts[u]++
	}
	assert.Len(t, counts, 3)
	for u, c := range counts {
		assert.Equalf(t, 1, c, "node %d yielded %d times", u, c)
	}
}

func TestDFSMatchesBFSReachableSet(t *testing.T) {
	g := diamondList(t)
	g.AddNode(5) // isolated, unreachable from 0

	dseq, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	bseq, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	viaDFS := dseq.Collect()
	viaBFS := bseq.Collect()
	slices.Sort(viaDFS)
	slices.Sort(viaBFS)
	assert.Equal(t, viaBFS, viaDFS)
}

func TestDFSRangeRestartsFromScratch(t *testing.T) {
	seq, err := dfs.DFS(diamondList(t), 0)
	require.NoError(t, err)

	assert.Equal(t, seq.Collect(), seq.Collect())
}

func TestDFSEarlyBreakStopsCleanly(t *testing.T) {
	seq, err := dfs.DFS(diamondList(t), 0)
	require.NoError(t, err)

	var got []core.NodeIndex
	for u := range seq {
		got = append(got, u)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []core.NodeIndex{0, 2}, got)
}

func TestDFSDeepChainNeedsNoRecursion(t *testing.T) {
	const n = 200_000
	g := core.NewDiGraph[struct{}, uint]()
	for i := 0; i < n; i++ {
		g.AddNode(struct{}{})
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(core.NodeIndex(i), core.NodeIndex(i+1), 1))
	}

	seq, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	var visited int
	for range seq {
		visited++
	}
	assert.Equal(t, n, visited)
}

func TestDFSRejectsNilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

func TestDFSRejectsOutOfRangeStart(t *testing.T) {
	g := core.NewDiGraph[int, uint]()
	g.AddNode(0)

	_, err := dfs.DFS(g, 7)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = dfs.DFS(g, core.NoNode)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}
