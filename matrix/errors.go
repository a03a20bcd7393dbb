package matrix

import "errors"

// Sentinel errors for the matrix representation. Index violations wrap the
// shared core.ErrIndexOutOfRange, so callers can errors.Is across
// packages; only the matrix-specific conditions live here.
var (
	// ErrNonPositiveWeight is returned by weighted AddEdge calls given a
	// weight ≤ 0: cell value 0 is reserved to mean "no edge", so zero and
	// negative weights cannot be stored.
	ErrNonPositiveWeight = errors.New("matrix: edge weight must be positive")
)
