package dijkstra

import (
	"slices"

	"github.com/katalvlaran/duograph/core"
)

// PredecessorMap records, for every node the search settled, the node
// it was reached from on a shortest path. The start maps to
// core.NoNode.
type PredecessorMap map[core.NodeIndex]core.NodeIndex

// PathTo reconstructs the shortest path from start to target out of a
// predecessor map. The result runs start→…→target inclusive and is
// [start] when target == start. A missing path is a nil result, not
// an error: nil when target never settled or the chain back from it
// does not reach start.
func PathTo(m PredecessorMap, start, target core.NodeIndex) []core.NodeIndex {
	if _, ok := m[target]; !ok {
		return nil
	}

	path := []core.NodeIndex{target}
	for at := target; at != start; {
		prev, ok := m[at]
		// len(path) is bounded by the map size, so a malformed cyclic
		// map cannot hang the walk.
		if !ok || prev == core.NoNode || len(path) > len(m) {
			return nil
		}
		path = append(path, prev)
		at = prev
	}
	slices.Reverse(path)
	return path
}
