// Package matrix implements the adjacency-matrix graph representation:
// a flat row-major block of int64 weights where cell (u,v) > 0 is an edge
// of that weight and 0 means "no edge".
//
// Variants
//
//	Directed × weighted are type-level tags, so the package exports four
//	graph types, each with the only edge-insertion signature that is valid
//	for it:
//
//	  Graph           undirected, unweighted  AddEdge(a, b)
//	  DiGraph         directed,   unweighted  AddEdge(from, to)
//	  WeightedGraph   undirected, weighted    AddEdge(a, b, w)
//	  WeightedDiGraph directed,   weighted    AddEdge(from, to, w)
//
//	Unweighted insertion stores weight 1; undirected insertion writes both
//	symmetric cells in the same call. There is no runtime flag to branch
//	on and no way to call the wrong shape.
//
// Storage & growth
//
//	Cells live in a stride×stride square, stride doubling when the node
//	count outgrows it; growth re-lays existing rows into the wider block,
//	so every previously stored cell keeps its value and all new cells are
//	zero. AddNode is therefore O(n) amortized (the trade against the list
//	representation's O(1) insertion) while edge lookup is O(1).
//
// Value lookup
//
//	Every node carries a comparable value. IndexOf resolves a value to its
//	index; adding a second node with an equal value repoints the lookup at
//	the newer node while the older node and its cells stay.
//
// Limitation
//
//	Cell value 0 is reserved for "no edge", so a true zero-weight edge is
//	not representable; weighted AddEdge rejects w ≤ 0 with
//	ErrNonPositiveWeight rather than storing an absence.
//
// No matrix type is safe for concurrent use: one writer or any number of
// readers, never both.
package matrix
