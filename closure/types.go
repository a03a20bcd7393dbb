package closure

import (
	"errors"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the read surface both closure algorithms need. Both core
// and matrix graphs satisfy it.
type Graph interface {
	// NodeCount reports how many nodes the graph holds.
	NodeCount() int
	// Neighbors lists the direct successors of u.
	Neighbors(u core.NodeIndex) ([]core.NodeIndex, error)
}

// ErrNilGraph is returned when a closure algorithm receives a nil
// graph.
var ErrNilGraph = errors.New("closure: graph is nil")

// Matrix is an N×N reachability table: m[i][j] reports whether node j
// is reachable from node i. The diagonal is always true.
type Matrix [][]bool

func newMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	return m
}
