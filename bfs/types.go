package bfs

import (
	"errors"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the surface BFS traverses. Both duograph representations
// satisfy it: the adjacency list reports neighbors in insertion order,
// the matrix in ascending index order, and the visit order inherits that.
type Graph interface {
	// NodeCount reports the number of nodes; valid indices are
	// [0, NodeCount()).
	NodeCount() int

	// Neighbors returns the destinations of u's outgoing edges.
	Neighbors(u core.NodeIndex) ([]core.NodeIndex, error)
}

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("bfs: graph is nil")
)
