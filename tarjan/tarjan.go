package tarjan

import "github.com/katalvlaran/duograph/core"

// frame is one suspended node of the depth-first walk: the node, its
// cached neighbor list, and the next neighbor to expand.
type frame struct {
	v    core.NodeIndex
	ns   []core.NodeIndex
	next int
}

// SCCs returns one label per node. labels[i] is the representative
// node of i's strongly connected component: equal labels mean same
// component. Every node is labeled, including isolated ones (each in
// a component of its own).
//
// Runs Tarjan's single-pass algorithm on an explicit frame stack.
func SCCs(g Graph) ([]core.NodeIndex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NodeCount()
	labels := make([]core.NodeIndex, n)
	ids := make([]int, n) // discovery order, -1 = unvisited
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range ids {
		ids[i] = -1
	}

	tstack := make([]core.NodeIndex, 0, n) // nodes of open components
	frames := make([]frame, 0, n)
	counter := 0

	open := func(v core.NodeIndex) error {
		ns, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		ids[v], low[v] = counter, counter
		counter++
		tstack = append(tstack, v)
		onStack[v] = true
		frames = append(frames, frame{v: v, ns: ns})
		return nil
	}

	for r := core.NodeIndex(0); int(r) < n; r++ {
		if ids[r] != -1 {
			continue
		}
		frames = frames[:0]
		if err := open(r); err != nil {
			return nil, err
		}

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.next < len(f.ns) {
				w := f.ns[f.next]
				f.next++
				if ids[w] == -1 {
					// open may grow frames and invalidate f; the next
					// iteration re-derives the top frame.
					if err := open(w); err != nil {
						return nil, err
					}
				} else if onStack[w] && low[w] < low[f.v] {
					low[f.v] = low[w]
				}
				continue
			}

			// Every neighbor expanded. A node whose low-link still
			// equals its own id roots a component: pop through it.
			v := f.v
			if low[v] == ids[v] {
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					labels[w] = v
					if w == v {
						break
					}
				}
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				if p := &frames[len(frames)-1]; low[v] < low[p.v] {
					low[p.v] = low[v]
				}
			}
		}
	}
	return labels, nil
}
