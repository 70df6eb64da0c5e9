// Package prim_kruskal provides instrumented minimum-spanning-tree
// algorithms for undirected weighted graphs.
//
// Prim grows the tree from a root (the first node, or WithRoot) with a
// min-heap of frontier edges ordered by (weight, source, target). Kruskal
// sorts all links by weight, keeping link order for ties, and joins
// components with an iterative union-find (path halving, union by rank).
//
// Both record one step per accepted edge; Kruskal also records one step per
// rejected (cycle-closing) link. On a disconnected graph Prim returns the
// tree of the root's component and Kruskal the spanning forest; neither
// treats disconnection as an error.
//
// Complexity:
//
//   - Prim:    O(L log L) time, O(V + L) memory.
//   - Kruskal: O(L log L + α(V)·L) time, O(V + L) memory.
//
// Errors:
//
//   - ErrNilGraph       if the graph is nil.
//   - core.ErrDirection if the graph is directed.
//   - core.ErrNotFound  if WithRoot names an unknown vertex.
package prim_kruskal
