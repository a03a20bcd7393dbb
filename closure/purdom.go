package closure

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/duograph/core"
	"github.com/katalvlaran/duograph/tarjan"
)

// pframe is one suspended node of the postorder walk.
type pframe struct {
	v    core.NodeIndex
	next int
}

// Purdom computes the transitive closure by condensation: Tarjan
// labels collapse every strongly connected component onto its
// representative, reach bitsets propagate once over the component DAG
// in postorder, and the component table expands back to nodes. Nodes
// of one component share a row verbatim.
//
// The input graph is read, never mutated. O(V+E) plus the bitset
// unions, against BFS's O(V·(V+E)).
func Purdom(g Graph) (Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels, err := tarjan.SCCs(g)
	if err != nil {
		return nil, err
	}

	// Component DAG over representatives: drop intra-component edges,
	// dedupe parallels.
	n := g.NodeCount()
	succs := make([][]core.NodeIndex, n)
	seen := make(map[int64]struct{})
	for u := 0; u < n; u++ {
		ns, err := g.Neighbors(core.NodeIndex(u))
		if err != nil {
			return nil, err
		}
		ru := labels[u]
		for _, v := range ns {
			rv := labels[v]
			if ru == rv {
				continue
			}
			key := int64(ru)*int64(n) + int64(rv)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			succs[ru] = append(succs[ru], rv)
		}
	}

	// Postorder guarantees every successor's row is finished before
	// its predecessors union it in.
	reach := make([]*bitset.BitSet, n)
	visited := sparsesets.New(n)
	stack := make([]pframe, 0, n)
	for r := 0; r < n; r++ {
		rep := labels[r]
		if visited.Contains(int(rep)) {
			continue
		}
		visited.Insert(int(rep))
		stack = append(stack[:0], pframe{v: rep})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(succs[f.v]) {
				w := succs[f.v][f.next]
				f.next++
				if !visited.Contains(int(w)) {
					visited.Insert(int(w))
					stack = append(stack, pframe{v: w})
				}
				continue
			}

			row := bitset.New(uint(n))
			row.Set(uint(f.v))
			for _, s := range succs[f.v] {
				row.InPlaceUnion(reach[s])
			}
			reach[f.v] = row
			stack = stack[:len(stack)-1]
		}
	}

	// Expand: a node reaches j iff its component reaches j's.
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		ri := reach[labels[i]]
		for j := 0; j < n; j++ {
			m[i][j] = ri.Test(uint(labels[j]))
		}
	}
	return m, nil
}
