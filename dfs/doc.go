// Package dfs implements depth-first traversal over any graph exposing
// NodeCount and Neighbors.
//
// DFS returns a lazy core.Seq that yields nodes in pre-order: a node is
// yielded the moment it is first reached, then its first neighbor's
// subtree is explored before the second neighbor's. The walk uses an
// explicit stack, so recursion depth never limits graph size.
//
// Neighbor order is whatever the graph reports: insertion order for
// core graphs, ascending node index for matrix graphs. Ranging over the
// sequence again restarts the traversal from scratch.
//
// Complexity: O(V+E) over the reachable subgraph for core graphs,
// O(V²) for matrix graphs (each Neighbors call scans a full row).
package dfs
