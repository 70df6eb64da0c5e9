package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every Dijkstra result.
const Algorithm = "dijkstra"

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	adj     *core.Adjacency
	opts    Options
	start   string
	rec     *trace.Recorder
	dist    map[string]float64
	prev    map[string]string
	via     map[string]float64
	visited map[string]bool
	order   []string
	pq      nodePQ
}

// Dijkstra computes shortest distances from startID.
//
// Preconditions and validation (in order, before any step is recorded):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadInfThreshold).
//  3. startID must be non-empty and present (core.ErrMissingParameter,
//     core.ErrNotFound); the same holds for End when set.
//  4. No link in g may have negative weight (core.ErrInvalidWeight).
func Dijkstra(g *core.Graph, startID string, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.RequireNode("start", startID); err != nil {
		return nil, err
	}
	if cfg.End != "" && !g.HasNode(cfg.End) {
		return nil, fmt.Errorf("%w: end %q", core.ErrNotFound, cfg.End)
	}
	for _, l := range g.Links() {
		if l.Weight < 0 {
			return nil, fmt.Errorf("dijkstra: %w: link %s→%s weight=%s",
				core.ErrInvalidWeight, l.Source, l.Target, trace.FormatNumber(l.Weight))
		}
	}

	r := &runner{
		g:       g,
		adj:     g.Adjacency(),
		opts:    cfg,
		start:   startID,
		rec:     trace.NewRecorder(Algorithm),
		dist:    make(map[string]float64, g.NodeCount()),
		prev:    make(map[string]string, g.NodeCount()),
		via:     make(map[string]float64, g.NodeCount()),
		visited: make(map[string]bool, g.NodeCount()),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// init sets every distance to +Inf, the start to 0, and seeds the heap.
func (r *runner) init() {
	for _, id := range r.adj.Order() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.start, dist: 0})

	r.rec.Step("Start Dijkstra from "+r.g.Label(r.start), trace.Snapshot{
		Distances: r.dist,
		Heap:      r.pq.entries(),
	})
}

// process pops vertices in distance order until the heap empties or the end
// vertex is finalised.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.order = append(r.order, u)

		msg := fmt.Sprintf("Visit %s with distance %s", r.g.Label(u), trace.FormatNumber(item.dist))
		r.rec.Step(msg, trace.Snapshot{
			CurrentNode: u,
			Visited:     r.order,
			Distances:   r.dist,
			Heap:        r.pq.entries(),
		})
		r.rec.Logf("Visit %s: %s", r.g.Label(u), trace.FormatNumber(item.dist))

		if r.opts.End != "" && u == r.opts.End {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the finalised vertex u.
func (r *runner) relax(u string) {
	for _, nb := range r.adj.Neighbors(u) {
		if nb.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		alt := r.dist[u] + nb.Weight
		if alt >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = alt
		r.prev[nb.ID] = u
		r.via[nb.ID] = nb.Weight
		heap.Push(&r.pq, nodeItem{id: nb.ID, dist: alt})

		r.rec.Step(fmt.Sprintf("Update distance to %s: %s", r.g.Label(nb.ID), trace.FormatNumber(alt)), trace.Snapshot{
			CurrentNode: u,
			CurrentEdge: &trace.Edge{Source: u, Target: nb.ID, Weight: nb.Weight},
			Distances:   r.dist,
			Heap:        r.pq.entries(),
		})
	}
}

func (r *runner) result() *trace.Result {
	if r.opts.End != "" {
		end := r.opts.End
		if math.IsInf(r.dist[end], 1) {
			r.rec.Logf("%s is unreachable from %s", r.g.Label(end), r.g.Label(r.start))
		} else {
			path := trace.PathTo(r.prev, r.start, end)
			r.rec.Logf("Shortest path: %s (%s)", trace.JoinLabels(path, r.g.Label), trace.FormatNumber(r.dist[end]))
		}
	}

	res := r.rec.Result()
	res.Visited = r.order
	res.Distances = r.dist
	res.Previous = r.prev
	if r.opts.End != "" {
		res.Path = trace.PathTo(r.prev, r.start, r.opts.End)
	} else {
		res.TreeEdges = trace.TreeEdges(r.g.NodeIDs(), r.prev, r.via)
	}

	return res
}
