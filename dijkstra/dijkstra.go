package dijkstra

import (
	"fmt"
	"math"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/duograph/core"
)

// Dijkstra runs a single-source shortest-path search from start and
// returns the predecessor map of every node it settled. Reachable
// nodes beyond the MaxCost radius are left out of the map; with a
// Target set the search returns the moment the target pops, so the
// map may cover only part of the graph.
//
// Not safe for concurrent mutation of g: one writer or any number of
// readers.
func Dijkstra(g Graph, start core.NodeIndex, opts ...Option) (PredecessorMap, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", core.ErrIndexOutOfRange, start, n)
	}
	if o.Target != core.NoNode && (o.Target < 0 || int(o.Target) >= n) {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", core.ErrIndexOutOfRange, o.Target, n)
	}

	costs := make([]int64, n)
	for i := range costs {
		costs[i] = math.MaxInt64
	}
	prev := PredecessorMap{start: core.NoNode}

	frontier := yagh.New[int64](n)
	frontier.Put(int(start), 0)
	costs[start] = 0

	for frontier.Size() > 0 {
		entry := frontier.Pop()
		u, c := core.NodeIndex(entry.Elem), entry.Cost
		if u == o.Target {
			return prev, nil
		}

		row, err := g.Row(u)
		if err != nil {
			return nil, err
		}
		for v, w := range row {
			if w == 0 {
				continue
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeWeight, w, u, v)
			}
			// Reject against the cap before adding so c+w cannot
			// overflow.
			if w > o.MaxCost-c {
				continue
			}
			newCost := c + w
			if newCost >= costs[v] {
				continue
			}
			costs[v] = newCost
			prev[core.NodeIndex(v)] = u
			frontier.Put(v, newCost)
		}
	}
	return prev, nil
}
