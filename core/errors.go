package core

import "errors"

// Sentinel errors shared by every algorithm package. Algorithm packages wrap
// them with their own prefix (fmt.Errorf("dijkstra: %w", ErrInvalidWeight)),
// so callers branch with errors.Is regardless of which package failed.
var (
	// ErrMissingParameter indicates that a required start or end ID was empty.
	ErrMissingParameter = errors.New("core: missing required parameter")

	// ErrNotFound indicates an operation referenced a node ID absent from the graph.
	ErrNotFound = errors.New("core: node not found")

	// ErrInvalidWeight indicates a negative weight where the algorithm forbids one.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrDirection indicates the graph's directedness does not suit the algorithm.
	ErrDirection = errors.New("core: unsupported graph direction")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the start.
	ErrNegativeCycle = errors.New("core: negative cycle detected")

	// ErrEulerInfeasible indicates that no Euler trail or circuit exists.
	ErrEulerInfeasible = errors.New("core: euler walk infeasible")

	// ErrUnreachable indicates that no path joins two endpoints. Algorithms
	// report this softly (absent path, infinite distance); only helpers such as
	// trace.Result.Distance return it as an error.
	ErrUnreachable = errors.New("core: target unreachable")

	// ErrEmptyNodeID indicates that a node was supplied with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node ID was added twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")
)
