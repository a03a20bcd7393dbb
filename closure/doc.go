// Package closure computes transitive closures: which nodes can reach
// which over any number of hops.
//
// Two algorithms produce the same Matrix and differ only in cost
// shape:
//
//   - BFS runs one breadth-first traversal per node. Simple, no setup,
//     O(V·(V+E)) on list graphs.
//   - Purdom condenses the graph first: Tarjan labels collapse each
//     strongly connected component to one representative, reach sets
//     propagate once over the component DAG in postorder, then expand
//     back to nodes. Far cheaper when components are large.
//
// Every node reaches itself: both algorithms report a true diagonal,
// the zero-hop case included.
package closure
