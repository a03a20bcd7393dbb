package bfs

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/duograph/core"
)

// BFS returns the lazy breadth-first sequence from start. The start index
// is validated here; the traversal itself runs only when the sequence is
// ranged, and each range restarts it from scratch. A Neighbors error from
// a foreign Graph implementation ends the sequence early (the duograph
// representations cannot fail mid-walk: every expanded index came from the
// graph itself).
//
// The graph must not be mutated while a returned sequence is ranged.
func BFS(g Graph, start core.NodeIndex) (core.Seq, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.NodeCount(); start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", core.ErrIndexOutOfRange, start, n)
	}

	return func(yield func(core.NodeIndex) bool) {
		visited := sparsesets.New(g.NodeCount())
		queue := make([]core.NodeIndex, 0, 16)

		// Seed the frontier.
		visited.Insert(int(start))
		queue = append(queue, start)

		// Dequeue, yield, enqueue unvisited neighbors.
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if !yield(u) {
				return
			}
			ns, err := g.Neighbors(u)
			if err != nil {
				return
			}
			for _, v := range ns {
				if visited.Contains(int(v)) {
					continue
				}
				visited.Insert(int(v))
				queue = append(queue, v)
			}
		}
	}, nil
}
