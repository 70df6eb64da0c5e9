// Package dijkstra implements an instrumented Dijkstra shortest-path search
// on graphs with non-negative link weights.
//
// Dijkstra processes vertices in order of increasing tentative distance
// using a min-heap, relaxing outgoing links and recording one step per pop
// and one per successful relaxation.
//
// Complexity:
//
//   - Time:  O((V + L) log V)
//   - Space: O(V + L), the heap uses lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Every link in the graph is scanned up front; any negative weight fails
//     the run with core.ErrInvalidWeight, even on a link unreachable from
//     the start.
//   - Heap ties are broken by vertex ID so that replays are identical.
//   - WithEnd stops the search as soon as the end vertex is popped. An
//     unreachable end is not an error: Path is nil and its distance +Inf.
//   - Without WithEnd the result carries the full distance map and the
//     predecessor tree as TreeEdges.
//   - WithInfEdgeThreshold treats heavy links as walls.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithEnd("D"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := res.Distance("D") // core.ErrUnreachable if D cannot be reached
package dijkstra
