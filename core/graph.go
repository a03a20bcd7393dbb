package core

import "fmt"

// node is one adjacency-list slot: the payload plus the ordered outgoing
// edge records.
type node[V, W any] struct {
	value V
	edges []Edge[W]
}

// adjacency carries the state shared by Graph and DiGraph. Its methods are
// promoted onto both; only edge insertion differs between the two.
type adjacency[V, W any] struct {
	nodes []node[V, W]
}

// AddNode appends a node holding value and returns its index. Indices are
// issued sequentially from 0. Never fails. O(1) amortized.
func (a *adjacency[V, W]) AddNode(value V) NodeIndex {
	a.nodes = append(a.nodes, node[V, W]{value: value})
	return NodeIndex(len(a.nodes) - 1)
}

// NodeCount reports how many nodes have been added; valid indices are
// [0, NodeCount()).
func (a *adjacency[V, W]) NodeCount() int {
	return len(a.nodes)
}

// Value returns the payload stored at index i.
func (a *adjacency[V, W]) Value(i NodeIndex) (V, error) {
	if err := a.check(i); err != nil {
		var zero V
		return zero, err
	}
	return a.nodes[i].value, nil
}

// Edges returns node i's outgoing records in insertion order. The slice is
// a copy; mutating it leaves the graph untouched.
func (a *adjacency[V, W]) Edges(i NodeIndex) ([]Edge[W], error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	out := make([]Edge[W], len(a.nodes[i].edges))
	copy(out, a.nodes[i].edges)
	return out, nil
}

// Neighbors returns the destination of every outgoing record of node i in
// insertion order, one entry per stored record, duplicates included.
func (a *adjacency[V, W]) Neighbors(i NodeIndex) ([]NodeIndex, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	es := a.nodes[i].edges
	out := make([]NodeIndex, len(es))
	for k := range es {
		out[k] = es[k].To
	}
	return out, nil
}

// HasEdge reports whether at least one from→to record exists. O(deg(from)).
func (a *adjacency[V, W]) HasEdge(from, to NodeIndex) (bool, error) {
	if err := a.check(from); err != nil {
		return false, err
	}
	if err := a.check(to); err != nil {
		return false, err
	}
	for _, e := range a.nodes[from].edges {
		if e.To == to {
			return true, nil
		}
	}
	return false, nil
}

// check validates one index against the current node count.
func (a *adjacency[V, W]) check(i NodeIndex) error {
	if i < 0 || int(i) >= len(a.nodes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(a.nodes))
	}
	return nil
}

// push appends one record; callers validate indices first.
func (a *adjacency[V, W]) push(from, to NodeIndex, w W) {
	a.nodes[from].edges = append(a.nodes[from].edges, Edge[W]{Weight: w, To: to})
}

// Graph is the undirected adjacency-list graph over payloads V and edge
// weights W. AddEdge records both directions in one call, so stored
// records stay symmetric.
//
// Not safe for concurrent use: one writer or any number of readers.
type Graph[V, W any] struct {
	adjacency[V, W]
}

// NewGraph returns an empty undirected adjacency-list graph.
func NewGraph[V, W any]() *Graph[V, W] {
	return &Graph[V, W]{}
}

// AddEdge records the undirected edge a↔b with weight w: a→b and b→a are
// appended together, and both indices are validated before either append,
// so a failed call inserts nothing. Re-adding a pair appends duplicate
// records. A self-loop stores two records like any other pair.
func (g *Graph[V, W]) AddEdge(a, b NodeIndex, w W) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	g.push(a, b, w)
	g.push(b, a, w)
	return nil
}

// DiGraph is the directed adjacency-list graph over payloads V and edge
// weights W. AddEdge records a single one-way edge.
//
// Not safe for concurrent use: one writer or any number of readers.
type DiGraph[V, W any] struct {
	adjacency[V, W]
}

// NewDiGraph returns an empty directed adjacency-list graph.
func NewDiGraph[V, W any]() *DiGraph[V, W] {
	return &DiGraph[V, W]{}
}

// AddEdge records the directed edge from→to with weight w. Both indices
// are validated first. Re-adding a pair appends a duplicate record.
func (g *DiGraph[V, W]) AddEdge(from, to NodeIndex, w W) error {
	if err := g.check(from); err != nil {
		return err
	}
	if err := g.check(to); err != nil {
		return err
	}
	g.push(from, to, w)
	return nil
}
