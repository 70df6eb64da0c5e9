package euler

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// FleuryAlgorithm is the name recorded on every Fleury result.
const FleuryAlgorithm = "fleury"

// Fleury builds an Euler trail by bridge avoidance.
//
// Start vertex: the first odd-degree vertex in node order, otherwise the
// first vertex with at least one edge. At each vertex the first unused edge
// (in link order) that is not a bridge of the remaining graph is taken; when
// every candidate is a bridge the first one is crossed.
//
// Errors: ErrNilGraph, core.ErrDirection, core.ErrEulerInfeasible.
func Fleury(g *core.Graph) (*trace.Result, error) {
	m, err := checkFeasible(g, FleuryAlgorithm, 0, 2)
	if err != nil {
		return nil, err
	}

	start := m.firstWithEdges()
	if odd := m.oddVertices(); len(odd) > 0 {
		start = odd[0]
	}

	rec := trace.NewRecorder(FleuryAlgorithm)
	if start == "" {
		return rec.Result(), nil
	}
	rec.Step("Start Fleury from "+g.Label(start), trace.Snapshot{CurrentNode: start})

	path := []string{start}
	var walked []trace.Edge
	for cur := start; m.left > 0; {
		candidates := m.unused(cur)
		if len(candidates) == 0 {
			break
		}
		pick, bridge := candidates[0], true
		for _, id := range candidates {
			if !m.isBridge(cur, id, len(candidates)) {
				pick, bridge = id, false
				break
			}
		}

		next := m.edges[pick].other(cur)
		m.consume(pick)
		walked = append(walked, edgeOf(cur, next))
		path = append(path, next)

		msg := fmt.Sprintf("Move from %s to %s", g.Label(cur), g.Label(next))
		if bridge && len(candidates) > 1 {
			msg += " across a bridge"
		}
		rec.Step(msg, trace.Snapshot{
			CurrentEdge:  &walked[len(walked)-1],
			VisitedEdges: walked,
			Path:         path,
		})
		cur = next
	}
	rec.Log("Euler path: " + trace.JoinLabels(path, g.Label))

	res := rec.Result()
	res.EulerPath = path
	res.TraversedEdges = walked

	return res, nil
}

// isBridge reports whether crossing edge id from x would disconnect its far
// endpoint from x. An edge that is x's only remaining edge never counts as
// a bridge, since the walk has no alternative.
func (m *multigraph) isBridge(x string, id, remaining int) bool {
	if remaining == 1 {
		return false
	}
	m.used[id] = true
	reached := m.component(x)
	m.used[id] = false

	return !reached[m.edges[id].other(x)]
}
