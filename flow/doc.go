// Package flow computes maximum flow on directed graphs with step-by-step
// narration.
//
// FordFulkerson follows the Edmonds–Karp policy: every round a breadth-first
// search finds the shortest augmenting path (fewest arcs) through arcs with
// spare capacity, and the bottleneck is pushed along it.
//
// # Residual network
//
// Every stored link u→v contributes a forward arc with capacity Link.Cap()
// and a paired reverse arc v→u with capacity 0. Pushing f units adds f to
// the forward arc's flow and subtracts f from the reverse arc's flow, so the
// reverse arc's spare capacity becomes f and later rounds may cancel flow.
// Arcs are addressed by index, which keeps parallel and antiparallel links
// independent.
//
// # Trace
//
//   - One start step naming source and sink.
//   - One step and one log line per augmenting path (never per arc).
//   - Result.MaxFlow, Result.FlowDetails ("u-v" → flow, positive entries
//     only) and Result.FlowEdges (saturation view in link order).
//
// Complexity: O(V · E²) time, O(V + E) memory.
//
// Errors:
//   - core.ErrDirection: the graph is undirected.
//   - core.ErrMissingParameter / core.ErrNotFound: bad source or sink.
//   - ErrSourceIsSink: source and sink coincide.
//   - core.ErrInvalidWeight: a link has negative capacity.
package flow
