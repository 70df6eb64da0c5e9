// Package bellmanford implements an instrumented Bellman-Ford shortest-path
// search that tolerates negative link weights and reports negative cycles.
//
// Rounds
//
//	Up to |V|-1 rounds are run. Each round evaluates every directed use of
//	every link (all links forward, then all links reversed when the graph is
//	undirected) against the distances frozen at the start of the round.
//	For each target the cheapest candidate wins; ties keep the first edge in
//	sweep order. The round's winners are then applied one by one, each as a
//	step. A round without updates ends the loop early.
//
//	Relaxation against a frozen snapshot yields one clean wave per round and
//	converges to the same distances as the classic in-place variant.
//
// Negative cycles
//
//	After the rounds one more full sweep runs against the final distances.
//	If any edge still relaxes, the run fails with core.ErrNegativeCycle and
//	the partial result recorded so far is returned alongside the error.
//
// Complexity:
//
//   - Time:  O(V · L)
//   - Space: O(V + L)
package bellmanford
