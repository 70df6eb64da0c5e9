package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every Bellman-Ford result.
const Algorithm = "bellman_ford"

// arc is one directed use of a link.
type arc struct {
	u, v string
	w    float64
}

// update is the winning candidate for one target within a round.
type update struct {
	arc
	dist float64
}

type runner struct {
	g     *core.Graph
	start string
	end   string
	arcs  []arc
	rec   *trace.Recorder
	dist  map[string]float64
	prev  map[string]string
	via   map[string]float64
}

// BellmanFord computes shortest distances from startID.
//
// Errors:
//   - ErrNilGraph, core.ErrMissingParameter, core.ErrNotFound: before any step.
//   - core.ErrNegativeCycle: together with the partial result.
func BellmanFord(g *core.Graph, startID string, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.RequireNode("start", startID); err != nil {
		return nil, err
	}
	if o.End != "" && !g.HasNode(o.End) {
		return nil, fmt.Errorf("%w: end %q", core.ErrNotFound, o.End)
	}

	r := &runner{
		g:     g,
		start: startID,
		end:   o.End,
		arcs:  arcs(g),
		rec:   trace.NewRecorder(Algorithm),
		dist:  make(map[string]float64, g.NodeCount()),
		prev:  make(map[string]string, g.NodeCount()),
		via:   make(map[string]float64, g.NodeCount()),
	}
	for _, id := range g.NodeIDs() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[startID] = 0

	start := g.Label(startID)
	r.rec.Log("Start Bellman-Ford from " + start)
	r.rec.Logf("Initialise: d[%s] = 0, all other vertices = ∞", start)
	r.rec.Step("Start Bellman-Ford from "+start, trace.Snapshot{CurrentNode: startID, Distances: r.dist})

	r.rounds(g.NodeCount() - 1)
	if err := r.checkNegativeCycle(); err != nil {
		return r.result(), err
	}
	r.rec.Log("Bellman-Ford finished")

	return r.result(), nil
}

// arcs lists the sweep order: links forward, then reversed when undirected.
func arcs(g *core.Graph) []arc {
	links := g.Links()
	out := make([]arc, 0, 2*len(links))
	for _, l := range links {
		out = append(out, arc{u: l.Source, v: l.Target, w: l.Weight})
	}
	if !g.Directed() {
		for _, l := range links {
			out = append(out, arc{u: l.Target, v: l.Source, w: l.Weight})
		}
	}

	return out
}

// rounds runs at most n snapshot rounds.
func (r *runner) rounds(n int) {
	for i := 1; i <= n; i++ {
		r.rec.Logf("--- Round %d ---", i)
		updates := r.candidates()
		if len(updates) == 0 {
			r.rec.Narrate("No updates, the algorithm has converged", trace.Snapshot{Distances: r.dist})
			return
		}
		for _, up := range updates {
			r.dist[up.v] = up.dist
			r.prev[up.v] = up.u
			r.via[up.v] = up.w
			r.rec.Narrate(
				fmt.Sprintf("Relax %s → %s: %s", r.g.Label(up.u), r.g.Label(up.v), trace.FormatNumber(up.dist)),
				trace.Snapshot{
					CurrentNode: up.v,
					CurrentEdge: &trace.Edge{Source: up.u, Target: up.v, Weight: up.w},
					Distances:   r.dist,
				},
			)
		}
	}
}

// candidates evaluates every arc against the distances frozen at the start
// of the round and returns the best improvement per target, in order of the
// first arc that improved that target.
func (r *runner) candidates() []update {
	best := make(map[string]int)
	var out []update
	for _, a := range r.arcs {
		du := r.dist[a.u]
		if math.IsInf(du, 1) {
			continue
		}
		cand := du + a.w
		if i, ok := best[a.v]; ok {
			if cand < out[i].dist {
				out[i] = update{arc: a, dist: cand}
			}
			continue
		}
		if cand < r.dist[a.v] {
			best[a.v] = len(out)
			out = append(out, update{arc: a, dist: cand})
		}
	}

	return out
}

// checkNegativeCycle runs the extra sweep.
func (r *runner) checkNegativeCycle() error {
	for _, a := range r.arcs {
		du := r.dist[a.u]
		if math.IsInf(du, 1) || du+a.w >= r.dist[a.v] {
			continue
		}
		msg := fmt.Sprintf("Negative cycle detected: %s → %s still relaxes", r.g.Label(a.u), r.g.Label(a.v))
		r.rec.Narrate(msg, trace.Snapshot{
			CurrentEdge: &trace.Edge{Source: a.u, Target: a.v, Weight: a.w},
			Distances:   r.dist,
		})

		return fmt.Errorf("bellmanford: %w: %s→%s", core.ErrNegativeCycle, a.u, a.v)
	}

	return nil
}

func (r *runner) result() *trace.Result {
	res := r.rec.Result()
	res.Distances = r.dist
	res.Previous = r.prev
	if r.end != "" {
		res.Path = trace.PathTo(r.prev, r.start, r.end)
	} else {
		res.TreeEdges = trace.TreeEdges(r.g.NodeIDs(), r.prev, r.via)
	}

	return res
}
