package euler

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// HierholzerAlgorithm is the name recorded on every Hierholzer result.
const HierholzerAlgorithm = "hierholzer"

// circuitWalker holds the sorted incidence lists and the shared trace of a
// single Hierholzer run.
type circuitWalker struct {
	g      *core.Graph
	m      *multigraph
	sorted map[string][]int
	next   map[string]int
	rec    *trace.Recorder
	walked []trace.Edge
}

// Hierholzer builds an Euler circuit by merging sub-circuits.
//
// Narration follows the textbook steps: B1 closes the initial circuit R1,
// B2 checks whether R covers every edge, B3 picks the first vertex of R with
// unused edges, B4 closes a sub-circuit Q from it, B5 splices Q into R at
// that position, B6 advances the iteration counter.
//
// Errors: ErrNilGraph, core.ErrDirection, core.ErrEulerInfeasible.
func Hierholzer(g *core.Graph) (*trace.Result, error) {
	m, err := checkFeasible(g, HierholzerAlgorithm, 0)
	if err != nil {
		return nil, err
	}

	w := &circuitWalker{
		g:      g,
		m:      m,
		sorted: make(map[string][]int, len(m.order)),
		next:   make(map[string]int, len(m.order)),
		rec:    trace.NewRecorder(HierholzerAlgorithm),
	}
	for _, id := range m.order {
		inc := slices.Clone(m.inc[id])
		slices.SortStableFunc(inc, func(a, b int) int {
			x, y := m.edges[a].other(id), m.edges[b].other(id)
			switch {
			case core.NaturalLess(x, y):
				return -1
			case core.NaturalLess(y, x):
				return 1
			}
			return 0
		})
		w.sorted[id] = inc
	}

	start := m.firstWithEdges()
	if start == "" {
		return w.rec.Result(), nil
	}

	return w.run(start), nil
}

func (w *circuitWalker) label(ids []string) string {
	return trace.JoinLabels(ids, w.g.Label)
}

// take consumes the smallest unused edge at x and returns its far endpoint.
func (w *circuitWalker) take(x string) (string, bool) {
	inc := w.sorted[x]
	for w.next[x] < len(inc) {
		id := inc[w.next[x]]
		w.next[x]++
		if w.m.used[id] {
			continue
		}
		w.m.consume(id)
		return w.m.edges[id].other(x), true
	}
	return "", false
}

// remaining counts the unused edges at x.
func (w *circuitWalker) remaining(x string) int {
	return len(w.m.unused(x))
}

// circuit walks from start until it returns there or runs out of edges,
// recording one step per consumed edge.
func (w *circuitWalker) circuit(start, name string) []string {
	c := []string{start}
	for cur := start; ; {
		nxt, ok := w.take(cur)
		if !ok {
			break
		}
		w.walked = append(w.walked, edgeOf(cur, nxt))
		c = append(c, nxt)
		w.rec.Step(fmt.Sprintf("%s: %s → %s", name, w.g.Label(cur), w.g.Label(nxt)), trace.Snapshot{
			CurrentEdge:  &w.walked[len(w.walked)-1],
			VisitedEdges: w.walked,
			Path:         c,
		})
		cur = nxt
		if cur == start {
			break
		}
	}
	return c
}

func (w *circuitWalker) run(start string) *trace.Result {
	rec := w.rec
	rec.Logf("B1: Build the initial circuit R1 from %s", w.g.Label(start))
	rec.Step("B1: Start R1 from "+w.g.Label(start), trace.Snapshot{CurrentNode: start})

	r := w.circuit(start, "R1")
	rec.Logf("B1: R1 = %s", w.label(r))
	rec.Step("B1: R1 = "+w.label(r), trace.Snapshot{VisitedEdges: w.walked, Path: r})

	for i := 1; w.m.left > 0; {
		rec.Logf("B2: R%d does not cover every edge yet", i)

		at := slices.IndexFunc(r, func(id string) bool { return w.remaining(id) > 0 })
		if at < 0 {
			break
		}
		v := r[at]
		rec.Logf("B3: Choose v%d = %s in R%d (unused edges remain)", i, w.g.Label(v), i)
		rec.Step(fmt.Sprintf("B3: Choose v%d = %s (%d unused edges)", i, w.g.Label(v), w.remaining(v)), trace.Snapshot{
			CurrentNode:  v,
			VisitedEdges: w.walked,
			Path:         r,
		})

		rec.Logf("B4: Build sub-circuit Q%d from v%d", i, i)
		rec.Step(fmt.Sprintf("B4: Start Q%d from %s", i, w.g.Label(v)), trace.Snapshot{
			CurrentNode:  v,
			VisitedEdges: w.walked,
		})
		q := w.circuit(v, fmt.Sprintf("Q%d", i))
		rec.Logf("B4: Q%d = %s", i, w.label(q))
		rec.Step(fmt.Sprintf("B4: Q%d = %s", i, w.label(q)), trace.Snapshot{VisitedEdges: w.walked, Path: q})

		merged := make([]string, 0, len(r)+len(q)-1)
		merged = append(merged, r[:at]...)
		merged = append(merged, q...)
		r = append(merged, r[at+1:]...)

		i++
		rec.Logf("B5: Merge Q into R → R%d = %s", i, w.label(r))
		rec.Step(fmt.Sprintf("B5: Merge Q%d into R%d → R%d", i-1, i-1, i), trace.Snapshot{VisitedEdges: w.walked, Path: r})
		rec.Logf("B6: i = %d, back to B2", i)
	}

	rec.Logf("B2: Done, Euler circuit: %s", w.label(r))
	rec.Step("Euler circuit: "+w.label(r), trace.Snapshot{VisitedEdges: w.walked, Path: r})

	res := rec.Result()
	res.EulerPath = r
	res.TraversedEdges = w.walked

	return res
}
