// Package duograph is an in-memory graph-algorithms engine built around two
// interchangeable representations — adjacency list and adjacency matrix —
// with traversal, shortest paths, strongly connected components, and
// transitive closure on top.
//
// 🚀 What is duograph?
//
//	A small, synchronous library that brings together:
//		• Dual storage: adjacency list (sparse) & adjacency matrix (dense, O(1) lookup)
//		• Type-level variants: directed/undirected × weighted/unweighted,
//		  each exposing only the edge-insertion signature that is valid for it
//		• Traversals: lazy, restartable BFS and DFS sequences
//		• Shortest paths: Dijkstra with cost cutoff and early-exit target
//		• Components: Tarjan SCC labeling, fully iterative
//		• Reachability: transitive closure by repeated BFS or by
//		  SCC condensation (Purdom)
//
// ✨ Why choose duograph?
//
//   - Dense integer node identity – indices are issued once and never reused
//   - Explicit errors – out-of-range indices fail, they never default
//   - No hidden concurrency – one writer or many readers, no locks to fight
//   - Explicit stacks everywhere – graph depth never touches the call stack
//
// The packages, leaves first:
//
//	core/     — NodeIndex, lazy Seq, sentinel errors & the adjacency-list graph
//	matrix/   — the four adjacency-matrix variants, transpose, value lookup
//	bfs/      — breadth-first visitation sequences
//	dfs/      — depth-first visitation sequences
//	dijkstra/ — single-source shortest path over matrix rows
//	tarjan/   — strongly-connected-component labels & grouping
//	closure/  — reachability matrices, two interchangeable algorithms
//
// Quick ASCII example:
//
//	    a──▶b
//	    │   │
//	    ▼   ▼
//	    c──▶d
//
//	a reaches every node; d reaches only itself.
//
// Graphs are built first (append-only), then algorithms run read-only
// against them. The two mutating exceptions are matrix Transpose and
// list-graph Condense, and both say so loudly in their docs.
//
//	go get github.com/katalvlaran/duograph
package duograph
