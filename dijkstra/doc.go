// Package dijkstra implements single-source shortest path over
// weighted matrix graphs.
//
// Dijkstra scans adjacency rows, so any graph exposing NodeCount and
// Row qualifies; cell 0 means no edge and a positive cell is the edge
// weight. The frontier is a keyed min-heap (yagh.IntMap) so improving
// a node's tentative cost is a decrease-key, not a duplicate entry.
//
// The result is a PredecessorMap holding one entry per settled node;
// PathTo turns it into an explicit start→target node sequence.
// Two options tune the search: WithMaxCost bounds the path cost a node
// may be reached at, WithTarget stops the search as soon as the target
// settles.
//
// Complexity: O(V² + V·log V) on a matrix row scan.
package dijkstra
