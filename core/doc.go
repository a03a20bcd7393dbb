// Package core holds the node-identity primitives shared by every package
// in duograph and the adjacency-list graph representation.
//
// Identity
//
//	Nodes are identified by NodeIndex: a dense, zero-based integer assigned
//	by AddNode in insertion order. An index never changes and is never
//	reused. NoNode (-1) marks the explicit absence of a node, e.g. the
//	predecessor of a search's start. Traversals hand results back as Seq,
//	a lazy sequence of indices that restarts on every range.
//
// Representation
//
//	Graph (undirected) and DiGraph (directed) store, per node, a payload of
//	any type V and an ordered slice of outgoing Edge[W] records. The
//	directedness split is type-level: an undirected AddEdge writes the
//	reciprocal record in the same call, a directed AddEdge writes one.
//	There is no runtime "directed?" flag to branch on and no way to call
//	the wrong insertion shape.
//
//	Node insertion is O(1) amortized; edge insertion appends, so re-adding
//	a pair stores a duplicate record. The list form favors sparse graphs;
//	for dense graphs and O(1) edge lookups see the matrix package.
//
// Mutation discipline
//
//	No graph type here is safe for concurrent use. Hold exactly one writer
//	or any number of readers, never both. Algorithms in the sibling
//	packages only read.
//
// Errors
//
//	Index-taking methods validate and fail with wrapped ErrIndexOutOfRange;
//	they never silently return a default. Condense rejects malformed label
//	vectors with ErrBadLabels.
package core
