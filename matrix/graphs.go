package matrix

import (
	"fmt"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the undirected unweighted variant: AddEdge stores weight 1 in
// both symmetric cells.
type Graph[T comparable] struct {
	storage[T]
}

// NewGraph returns an empty undirected unweighted matrix graph.
func NewGraph[T comparable](opts ...Option) *Graph[T] {
	return &Graph[T]{storage: newStorage[T](newOptions(opts))}
}

// AddEdge records the undirected edge a↔b with weight 1 in both cells.
func (g *Graph[T]) AddEdge(a, b core.NodeIndex) error {
	return g.setEdge(a, b, 1, true)
}

// Transpose is a no-op: an undirected matrix is symmetric. Safe to call.
func (g *Graph[T]) Transpose() {}

// Clone returns a deep copy of the graph.
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{storage: g.storage.clone()}
}

// DiGraph is the directed unweighted variant: AddEdge stores weight 1 in
// the single from→to cell.
type DiGraph[T comparable] struct {
	storage[T]
}

// NewDiGraph returns an empty directed unweighted matrix graph.
func NewDiGraph[T comparable](opts ...Option) *DiGraph[T] {
	return &DiGraph[T]{storage: newStorage[T](newOptions(opts))}
}

// AddEdge records the directed edge from→to with weight 1.
func (g *DiGraph[T]) AddEdge(from, to core.NodeIndex) error {
	return g.setEdge(from, to, 1, false)
}

// Transpose reverses every edge in place by swapping symmetric cells.
// O(n²). Mutates the graph; not safe to call concurrently with readers.
func (g *DiGraph[T]) Transpose() {
	g.transpose()
}

// Clone returns a deep copy of the graph.
func (g *DiGraph[T]) Clone() *DiGraph[T] {
	return &DiGraph[T]{storage: g.storage.clone()}
}

// WeightedGraph is the undirected weighted variant: AddEdge stores an
// explicit positive weight in both symmetric cells.
type WeightedGraph[T comparable] struct {
	storage[T]
}

// NewWeightedGraph returns an empty undirected weighted matrix graph.
func NewWeightedGraph[T comparable](opts ...Option) *WeightedGraph[T] {
	return &WeightedGraph[T]{storage: newStorage[T](newOptions(opts))}
}

// AddEdge records the undirected edge a↔b with weight w in both cells.
// Re-adding overwrites the old weight. w must be positive: 0 means
// "no edge" in this representation and cannot be stored.
func (g *WeightedGraph[T]) AddEdge(a, b core.NodeIndex, w int64) error {
	if w <= 0 {
		return fmt.Errorf("%w: %d", ErrNonPositiveWeight, w)
	}
	return g.setEdge(a, b, w, true)
}

// EdgeWeight returns the a→b cell: the stored weight, or 0 when no edge
// is present. O(1).
func (g *WeightedGraph[T]) EdgeWeight(a, b core.NodeIndex) (int64, error) {
	if err := g.check(a); err != nil {
		return 0, err
	}
	if err := g.check(b); err != nil {
		return 0, err
	}
	return g.at(a, b), nil
}

// Transpose is a no-op: an undirected matrix is symmetric. Safe to call.
func (g *WeightedGraph[T]) Transpose() {}

// Clone returns a deep copy of the graph.
func (g *WeightedGraph[T]) Clone() *WeightedGraph[T] {
	return &WeightedGraph[T]{storage: g.storage.clone()}
}

// WeightedDiGraph is the directed weighted variant: AddEdge stores an
// explicit positive weight in the single from→to cell.
type WeightedDiGraph[T comparable] struct {
	storage[T]
}

// NewWeightedDiGraph returns an empty directed weighted matrix graph.
func NewWeightedDiGraph[T comparable](opts ...Option) *WeightedDiGraph[T] {
	return &WeightedDiGraph[T]{storage: newStorage[T](newOptions(opts))}
}

// AddEdge records the directed edge from→to with weight w. Re-adding
// overwrites the old weight. w must be positive: 0 means "no edge" in
// this representation and cannot be stored.
func (g *WeightedDiGraph[T]) AddEdge(from, to core.NodeIndex, w int64) error {
	if w <= 0 {
		return fmt.Errorf("%w: %d", ErrNonPositiveWeight, w)
	}
	return g.setEdge(from, to, w, false)
}

// EdgeWeight returns the from→to cell: the stored weight, or 0 when no
// edge is present. O(1).
func (g *WeightedDiGraph[T]) EdgeWeight(from, to core.NodeIndex) (int64, error) {
	if err := g.check(from); err != nil {
		return 0, err
	}
	if err := g.check(to); err != nil {
		return 0, err
	}
	return g.at(from, to), nil
}

// Transpose reverses every edge in place by swapping symmetric cells.
// O(n²). Mutates the graph; not safe to call concurrently with readers.
func (g *WeightedDiGraph[T]) Transpose() {
	g.transpose()
}

// Clone returns a deep copy of the graph.
func (g *WeightedDiGraph[T]) Clone() *WeightedDiGraph[T] {
	return &WeightedDiGraph[T]{storage: g.storage.clone()}
}
