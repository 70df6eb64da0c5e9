// Package core provides the normalized graph model shared by every algorithm
// in graphtrace, together with the Adjacency Builder and the error taxonomy.
//
// The Graph G = (V, L, directed) holds:
//
//   - Nodes: unique string IDs, a display Label (defaults to the ID), and
//     presentation-only layout coordinates (X, Y) and Type tag.
//   - Links: an ordered sequence of Source→Target pairs with a numeric Weight
//     and an optional Capacity (Cap() falls back to Weight when absent).
//   - A single directedness flag (WithDirected). Undirected links are stored
//     once and expanded in both directions by the Adjacency Builder.
//
// Why ordered storage?
//
//	Every algorithm narrates its run as a sequence of steps that an external
//	client replays. Replay fidelity requires that the same input graph always
//	yields the same step sequence, so Nodes(), Links() and Adjacency() all
//	preserve insertion order exactly. Nothing in core sorts by ID except the
//	explicit NaturalLess helper.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph            // O(1)
//	AddNode(n Node) error                           // O(1)
//	AddLink(l Link) error                           // O(1), strict endpoints
//	AddEdge(from, to string, w float64, ...) error  // O(1), auto-creates nodes
//
//	// Query (copies, insertion order)
//	Nodes() []Node, NodeIDs() []string, Links() []Link
//	HasNode(id) bool, Node(id) (Node, bool), Label(id) string
//	Directed() bool, NodeCount() int, LinkCount() int
//
//	// Adjacency Builder
//	Adjacency() *Adjacency                          // O(V + L)
//
// Concurrency:
//
//	A sync.RWMutex guards mutation. Algorithms only read, so any number of
//	runs may share one Graph in parallel without coordination.
//
// Errors:
//
//	ErrMissingParameter – a required start/end ID was not supplied.
//	ErrNotFound         – a referenced node ID does not exist.
//	ErrInvalidWeight    – a negative weight where it is forbidden.
//	ErrDirection        – directed/undirected mismatch for the algorithm.
//	ErrNegativeCycle    – Bellman-Ford detected a reachable negative cycle.
//	ErrEulerInfeasible  – the degree pattern (or edge connectivity) forbids an Euler walk.
//	ErrUnreachable      – soft condition: no path between two endpoints.
//	ErrEmptyNodeID      – zero-length node ID.
//	ErrDuplicateNode    – a node ID was added twice.
package core
