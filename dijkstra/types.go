package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/duograph/core"
)

// Graph is the row-oriented read surface Dijkstra needs. All four
// matrix variants satisfy it. Row(u) returns one cell per node: 0 is
// no edge, a positive value is the weight of u→v.
type Graph interface {
	// NodeCount reports how many nodes the graph holds.
	NodeCount() int
	// Row returns a copy of u's adjacency row.
	Row(u core.NodeIndex) ([]int64, error)
}

var (
	// ErrNilGraph is returned when Dijkstra receives a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
	// ErrNegativeWeight is returned when a row reports a negative
	// cell. Matrix graphs cannot store one; a foreign Graph
	// implementation can.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
	// ErrOptionViolation is returned when a With… option received an
	// unusable value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options bundles the search tunables. Build it with DefaultOptions
// or, more commonly, let Dijkstra apply With… options for you.
type Options struct {
	// MaxCost bounds the search radius: a node whose best path would
	// cost more than MaxCost never enters the result map.
	MaxCost int64

	// Target stops the search as soon as that node settles.
	// core.NoNode disables the shortcut and settles every reachable
	// node instead.
	Target core.NodeIndex

	// err records the first option violation; Dijkstra surfaces it
	// before touching the graph.
	err error
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions searches the whole graph with no cost bound.
func DefaultOptions() Options {
	return Options{MaxCost: math.MaxInt64, Target: core.NoNode}
}

// WithMaxCost caps the total cost a path may accumulate. Negative
// caps are rejected at the Dijkstra call with ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: negative MaxCost %d", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithTarget makes Dijkstra return as soon as target settles. The
// index is validated against the graph at the Dijkstra call.
func WithTarget(target core.NodeIndex) Option {
	return func(o *Options) { o.Target = target }
}
