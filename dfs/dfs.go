package dfs

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/duograph/core"
)

// DFS returns a lazy pre-order depth-first sequence over every node
// reachable from start. Each node is yielded exactly once even when the
// graph contains cycles or duplicate edge records.
//
// The sequence is restartable: each range begins a fresh traversal.
// Returns ErrNilGraph for a nil graph and core.ErrIndexOutOfRange when
// start does not name a node.
func DFS(g Graph, start core.NodeIndex) (core.Seq, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.NodeCount(); start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", core.ErrIndexOutOfRange, start, n)
	}

	return func(yield func(core.NodeIndex) bool) {
		visited := sparsesets.New(g.NodeCount())
		stack := make([]core.NodeIndex, 0, 16)
		stack = append(stack, start)

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited.Contains(int(u)) {
				continue
			}
			visited.Insert(int(u))
			if !yield(u) {
				return
			}

			ns, err := g.Neighbors(u)
			if err != nil {
				return
			}
			// Push reversed so the first neighbor is expanded first.
			for i := len(ns) - 1; i >= 0; i-- {
				if !visited.Contains(int(ns[i])) {
					stack = append(stack, ns[i])
				}
			}
		}
	}, nil
}
