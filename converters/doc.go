// Package converters moves graphs between core.Graph and three textual
// representations used by clients:
//
//   - Adjacency matrix: n×n, rows and columns ordered by natural node ID
//     order, entry = link weight (or 1/0 with WithPresence), zero diagonal,
//     symmetric for undirected graphs.
//   - Edge list: one (source label, target label, weight) triple per stored
//     link, JSON-encoded as [s, t, w].
//   - Adjacency list: label → neighbours as (label, weight) pairs, keys and
//     neighbours in natural order, JSON-encoded as {"A": [["B", 3]]}.
//
// "To" conversions read a graph; "From" conversions synthesise a fresh graph
// with sequential IDs "1".."n", node type "pc" and the five-column grid
// layout of core.GridPosition. Undirected input never produces the same edge
// twice.
//
// Round trips:
//
//	ToAdjacencyMatrix(FromAdjacencyMatrix(M)) reproduces M for any valid M
//	with non-negative entries.
//	ToEdgeList(FromEdgeList(L)) reproduces L.
package converters
