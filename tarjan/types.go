package tarjan

import (
	"errors"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the read surface SCC labeling needs. Both core and matrix
// graphs satisfy it.
type Graph interface {
	// NodeCount reports how many nodes the graph holds.
	NodeCount() int
	// Neighbors lists the direct successors of u.
	Neighbors(u core.NodeIndex) ([]core.NodeIndex, error)
}

// ErrNilGraph is returned when SCCs receives a nil graph.
var ErrNilGraph = errors.New("tarjan: graph is nil")
