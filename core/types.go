package core

import (
	"errors"
	"iter"
	"slices"
)

// Sentinel errors shared across duograph. Packages wrap these with
// positional context via fmt.Errorf("%w: ...", err), so callers test them
// with errors.Is.
var (
	// ErrIndexOutOfRange is returned when a node index is negative or not
	// below the graph's current node count.
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrBadLabels is returned by Condense when a label vector does not
	// describe a valid component assignment for the graph.
	ErrBadLabels = errors.New("core: invalid component label vector")
)

// NodeIndex identifies a node: dense, zero-based, assigned at insertion in
// insertion order, never reused.
type NodeIndex int

// NoNode is the explicit "no node" value, used where an index may be
// absent, such as the predecessor of a search's start node.
const NoNode NodeIndex = -1

// Seq is a lazy, finite sequence of node indices. Ranging a Seq a second
// time restarts the underlying walk from scratch.
type Seq iter.Seq[NodeIndex]

// Collect drains the sequence into a slice.
func (s Seq) Collect() []NodeIndex {
	return slices.Collect(iter.Seq[NodeIndex](s))
}

// Edge is one outgoing adjacency record of the list representation.
type Edge[W any] struct {
	// Weight is the record's weight payload.
	Weight W

	// To is the destination node index.
	To NodeIndex
}
