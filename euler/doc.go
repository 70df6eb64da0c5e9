// Package euler walks every edge of an undirected graph exactly once.
//
// Two narrated algorithms are provided:
//
//   - Fleury: builds an Euler trail (or circuit) edge by edge, never
//     crossing a bridge of the remaining graph while another edge is
//     available. Starts at the first odd-degree vertex when there is one.
//   - Hierholzer: builds an Euler circuit by closing an initial circuit R1
//     and splicing sub-circuits Q1, Q2, … into it at the first vertex of R
//     that still has unused edges. Neighbours are consumed in natural ID
//     order so the output is reproducible.
//
// Both algorithms treat parallel links as distinct edges and count a
// self-loop twice towards its vertex's degree.
//
// Feasibility is checked before any step is recorded:
//
//   - core.ErrDirection: the graph is directed.
//   - core.ErrEulerInfeasible: wrong number of odd-degree vertices (Fleury
//     accepts 0 or 2, Hierholzer only 0), or the edges span more than one
//     connected component.
//
// Complexity: Fleury O(E²) (one BFS bridge test per candidate edge),
// Hierholzer O(E log E) for the sorted incidence lists plus O(E·|R|) for
// the splice scans.
package euler
