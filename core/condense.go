package core

import "fmt"

// Condense rewrites the graph in place so that every strongly connected
// component collapses onto its representative node. labels must assign
// each node the index of its component's representative, as produced by
// tarjan.SCCs: one label per node, every label in range, and every
// representative labeled with itself.
//
// After the call, each representative carries the inter-component edges of
// its members, rewritten endpoint-wise to labels[u]→labels[v]: edges that
// land inside their own component are dropped, parallel duplicates are
// dropped (the first weight per destination is kept), and the record order
// follows the members' node and edge order. Non-representative nodes keep
// their index and payload but end up with no outgoing records; the node
// set itself is append-only and never shrinks.
//
// Mutates the graph; not safe to call concurrently with readers.
func (g *DiGraph[V, W]) Condense(labels []NodeIndex) error {
	n := len(g.nodes)
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d nodes", ErrBadLabels, len(labels), n)
	}
	for i, l := range labels {
		if l < 0 || int(l) >= n {
			return fmt.Errorf("%w: label %d of node %d out of range", ErrBadLabels, l, i)
		}
		if labels[l] != l {
			return fmt.Errorf("%w: label %d of node %d is not a representative", ErrBadLabels, l, i)
		}
	}

	// Gather every representative's rewritten records before any list is
	// replaced, so member edges survive their own clearing.
	merged := make(map[NodeIndex][]Edge[W], n)
	seen := make(map[[2]NodeIndex]struct{})
	for u := range g.nodes {
		ru := labels[u]
		for _, e := range g.nodes[u].edges {
			rv := labels[e.To]
			if ru == rv {
				continue
			}
			key := [2]NodeIndex{ru, rv}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged[ru] = append(merged[ru], Edge[W]{Weight: e.Weight, To: rv})
		}
	}

	for i := range g.nodes {
		g.nodes[i].edges = merged[NodeIndex(i)]
	}
	return nil
}
