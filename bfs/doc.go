// Package bfs provides lazy breadth-first visitation sequences over any
// graph exposing node counts and neighbor lists.
//
// BFS returns a core.Seq: nodes in non-decreasing distance from the start,
// ties broken by the graph's neighbor order (insertion order for the
// adjacency list, ascending index for the matrix), each node yielded at
// most once, the start always first. Nothing runs until the sequence is
// ranged, every range restarts the walk with fresh state, and consuming a
// full range yields exactly the set of nodes reachable from the start;
// that reachable-set contract is what the closure package builds on.
//
// Complexity per full range: O(V+E) time against the adjacency list,
// O(V²) against the matrix (neighbor lists are row scans), O(V) memory
// for the frontier and visited set.
package bfs
