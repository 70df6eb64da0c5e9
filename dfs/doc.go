// Package dfs implements an instrumented depth-first traversal over a
// core.Graph using an explicit stack.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the whole forest via
//     WithFullTraversal.
//   - Neighbors are pushed in reverse adjacency order so that the first
//     neighbor in link order is explored first.
//   - One step per push and one per visit (first pop of an unvisited vertex),
//     each carrying the stack contents bottom-to-top.
//
// Complexity:
//
//   - Time:   O(V + L)
//   - Memory: O(V + L) for the stack, plus the recorded steps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrMissingParameter  if startID is empty.
//   - core.ErrNotFound          if startID is not a vertex of g.
package dfs
