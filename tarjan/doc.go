// Package tarjan labels strongly connected components in one pass.
//
// SCCs runs Tarjan's algorithm over any graph exposing NodeCount and
// Neighbors and returns a label per node. A label is the index of the
// component's representative node (the depth-first root that closed
// the component), so two nodes belong to the same component exactly
// when their labels are equal, and every label names a real node.
// Components turns the vector into explicit node groups.
//
// The depth-first walk keeps its own frame stack instead of
// recursing, so component detection works on graphs far deeper than
// the goroutine stack would allow.
//
// Complexity: O(V+E) on list graphs, O(V²) on matrix graphs.
package tarjan
