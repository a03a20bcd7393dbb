package matrix

import (
	"fmt"

	"github.com/katalvlaran/duograph/core"
)

// storage is the flat cell block shared by the four variants. Cells live
// row-major in a stride×stride square with n ≤ stride; when n outgrows the
// stride, the block doubles and every existing row is re-laid into the
// wider square, so a written cell keeps its value across growth.
type storage[T comparable] struct {
	n      int                  // nodes added so far
	stride int                  // row width of cells
	cells  []int64              // stride*stride weights, 0 = no edge
	vals   []T                  // index → value
	index  map[T]core.NodeIndex // value → index, last writer wins
}

// newStorage allocates storage honoring the capacity option.
func newStorage[T comparable](o Options) storage[T] {
	s := storage[T]{index: make(map[T]core.NodeIndex)}
	if o.Capacity > 0 {
		s.stride = o.Capacity
		s.cells = make([]int64, s.stride*s.stride)
		s.vals = make([]T, 0, o.Capacity)
	}
	return s
}

// AddNode appends a node carrying value and returns its index, issued
// sequentially from 0. Never fails. Adding a value equal to an earlier
// node's repoints IndexOf at the new node; the earlier node and its cells
// stay. O(n) amortized because of stride growth.
func (s *storage[T]) AddNode(value T) core.NodeIndex {
	if s.n == s.stride {
		s.grow()
	}
	i := core.NodeIndex(s.n)
	s.n++
	s.vals = append(s.vals, value)
	s.index[value] = i
	return i
}

// grow doubles the stride and re-lays every existing row. New cells zero.
func (s *storage[T]) grow() {
	old := s.stride
	if old == 0 {
		s.stride = 1
		s.cells = make([]int64, 1)
		return
	}
	s.stride = old * 2
	next := make([]int64, s.stride*s.stride)
	for r := 0; r < s.n; r++ {
		copy(next[r*s.stride:r*s.stride+old], s.cells[r*old:(r+1)*old])
	}
	s.cells = next
}

// NodeCount reports how many nodes have been added; valid indices are
// [0, NodeCount()).
func (s *storage[T]) NodeCount() int {
	return s.n
}

// Value returns the value stored at index i.
func (s *storage[T]) Value(i core.NodeIndex) (T, error) {
	if err := s.check(i); err != nil {
		var zero T
		return zero, err
	}
	return s.vals[i], nil
}

// IndexOf resolves a node value to its index. When several nodes carry
// equal values the latest mapping wins.
func (s *storage[T]) IndexOf(value T) (core.NodeIndex, bool) {
	i, ok := s.index[value]
	return i, ok
}

// Row returns a copy of node u's weight row: NodeCount() cells with 0
// marking "no edge". Callers filter for positive cells to enumerate edges.
func (s *storage[T]) Row(u core.NodeIndex) ([]int64, error) {
	if err := s.check(u); err != nil {
		return nil, err
	}
	out := make([]int64, s.n)
	copy(out, s.cells[int(u)*s.stride:int(u)*s.stride+s.n])
	return out, nil
}

// Neighbors returns the destinations of u's outgoing edges in ascending
// index order, derived from a row scan.
func (s *storage[T]) Neighbors(u core.NodeIndex) ([]core.NodeIndex, error) {
	if err := s.check(u); err != nil {
		return nil, err
	}
	row := s.cells[int(u)*s.stride : int(u)*s.stride+s.n]
	var out []core.NodeIndex
	for v, w := range row {
		if w > 0 {
			out = append(out, core.NodeIndex(v))
		}
	}
	return out, nil
}

// HasEdge reports whether the a→b cell holds an edge. O(1).
func (s *storage[T]) HasEdge(a, b core.NodeIndex) (bool, error) {
	if err := s.check(a); err != nil {
		return false, err
	}
	if err := s.check(b); err != nil {
		return false, err
	}
	return s.at(a, b) > 0, nil
}

// check validates one index against the current node count.
func (s *storage[T]) check(i core.NodeIndex) error {
	if i < 0 || int(i) >= s.n {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfRange, i, s.n)
	}
	return nil
}

func (s *storage[T]) at(a, b core.NodeIndex) int64 {
	return s.cells[int(a)*s.stride+int(b)]
}

func (s *storage[T]) put(a, b core.NodeIndex, w int64) {
	s.cells[int(a)*s.stride+int(b)] = w
}

// setEdge validates both endpoints, then writes one cell, or both
// symmetric cells when sym is set. Re-adding overwrites the old weight.
func (s *storage[T]) setEdge(a, b core.NodeIndex, w int64, sym bool) error {
	if err := s.check(a); err != nil {
		return err
	}
	if err := s.check(b); err != nil {
		return err
	}
	s.put(a, b, w)
	if sym {
		s.put(b, a, w)
	}
	return nil
}

// transpose swaps cell (x,y) with (y,x) for every x ≥ y, reversing each
// stored edge in place. O(n²).
func (s *storage[T]) transpose() {
	for x := 0; x < s.n; x++ {
		for y := 0; y <= x; y++ {
			xy := x*s.stride + y
			yx := y*s.stride + x
			s.cells[xy], s.cells[yx] = s.cells[yx], s.cells[xy]
		}
	}
}

// clone deep-copies the storage.
func (s *storage[T]) clone() storage[T] {
	out := storage[T]{
		n:      s.n,
		stride: s.stride,
		cells:  make([]int64, len(s.cells)),
		vals:   make([]T, len(s.vals)),
		index:  make(map[T]core.NodeIndex, len(s.index)),
	}
	copy(out.cells, s.cells)
	copy(out.vals, s.vals)
	for v, i := range s.index {
		out.index[v] = i
	}
	return out
}
