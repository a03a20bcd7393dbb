package dfs

import (
	"errors"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the minimal read surface DFS needs. Both core and matrix
// graphs satisfy it.
type Graph interface {
	// NodeCount reports how many nodes the graph holds.
	NodeCount() int
	// Neighbors lists the direct successors of u.
	Neighbors(u core.NodeIndex) ([]core.NodeIndex, error)
}

// ErrNilGraph is returned when DFS receives a nil graph.
var ErrNilGraph = errors.New("dfs: graph is nil")
