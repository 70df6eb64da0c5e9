// Package bfs implements an instrumented breadth-first traversal over a
// core.Graph.
//
// What
//
//   - Explore vertices in FIFO order from a start vertex.
//   - Record one step for the start, one per visit (dequeue of an unvisited
//     vertex) and one per enqueue, each carrying the queue contents.
//   - Return the visit order and the parent→child edges that discovered each
//     visited vertex.
//
// Queue discipline
//
//	A neighbor is enqueued whenever it is unvisited at the time its parent is
//	expanded, so the queue may hold the same vertex more than once. Duplicates
//	are skipped when dequeued. This keeps the queue snapshots identical to the
//	narration a student would produce by hand.
//
// Determinism
//
//	Neighbors are expanded in core.Adjacency order (link insertion order).
//
// Complexity (V = |Vertices|, L = |Links|)
//
//   - Time:   O(V + L)
//   - Memory: O(V + L) for the queue, plus the recorded steps.
//
// Usage
//
//	res, err := bfs.BFS(g, "1")
//	if err != nil {
//	    // core.ErrMissingParameter, core.ErrNotFound, ErrGraphNil, ErrOptionViolation
//	}
//	fmt.Println(res.Visited)
package bfs
