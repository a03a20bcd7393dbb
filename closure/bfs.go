package closure

import (
	"github.com/katalvlaran/duograph/bfs"
	"github.com/katalvlaran/duograph/core"
)

// BFS computes the transitive closure by running one breadth-first
// traversal per node: row i is the reachable set of node i.
//
// O(V·(V+E)) on list graphs, O(V³) on matrix graphs.
func BFS(g Graph) (Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NodeCount()
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		seq, err := bfs.BFS(g, core.NodeIndex(i))
		if err != nil {
			return nil, err
		}
		for j := range seq {
			m[i][j] = true
		}
	}
	return m, nil
}
