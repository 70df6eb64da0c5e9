package bfs

import (
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every BFS result.
const Algorithm = "bfs"

// queueItem pairs a vertex ID with its depth and the vertex that pushed it.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start
}

// walker holds the mutable state of one run.
type walker struct {
	graph   *core.Graph
	adj     *core.Adjacency
	opts    Options
	rec     *trace.Recorder
	queue   []queueItem
	visited map[string]bool
	order   []string
	edges   []trace.Edge
}

// BFS traverses g breadth-first from startID.
//
// Errors (returned before any step is recorded):
//   - ErrGraphNil: g is nil.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - core.ErrMissingParameter: startID is empty.
//   - core.ErrNotFound: startID is not a vertex of g.
//
// Vertices unreachable from startID are simply absent from Visited.
func BFS(g *core.Graph, startID string, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.RequireNode("start", startID); err != nil {
		return nil, err
	}

	w := &walker{
		graph:   g,
		adj:     g.Adjacency(),
		opts:    o,
		rec:     trace.NewRecorder(Algorithm),
		visited: make(map[string]bool, g.NodeCount()),
		order:   make([]string, 0, g.NodeCount()),
	}
	w.queue = append(w.queue, queueItem{id: startID})
	w.rec.Step("Start BFS from "+g.Label(startID), trace.Snapshot{Queue: w.queueIDs()})
	w.loop()

	res := w.rec.Result()
	res.Visited = w.order
	res.TraversedEdges = w.edges

	return res, nil
}

// loop drains the queue.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if w.visited[item.id] {
			continue
		}
		w.visit(item)
		w.enqueueNeighbors(item)
	}
}

// visit marks item visited and records the visit step.
func (w *walker) visit(item queueItem) {
	w.visited[item.id] = true
	w.order = append(w.order, item.id)
	if item.parent != "" {
		w.edges = append(w.edges, trace.Edge{Source: item.parent, Target: item.id})
	}

	w.rec.Narrate("Visit "+w.graph.Label(item.id), trace.Snapshot{
		CurrentNode: item.id,
		Visited:     w.order,
		Queue:       w.queueIDs(),
	})
}

// enqueueNeighbors pushes every currently unvisited neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.adj.Neighbors(item.id) {
		if w.visited[nb.ID] {
			continue
		}
		w.queue = append(w.queue, queueItem{id: nb.ID, depth: next, parent: item.id})
		w.rec.Step("Enqueue "+w.graph.Label(nb.ID), trace.Snapshot{
			CurrentNode: item.id,
			CurrentEdge: &trace.Edge{Source: item.id, Target: nb.ID},
			Queue:       w.queueIDs(),
		})
	}
}

func (w *walker) queueIDs() []string {
	ids := make([]string, len(w.queue))
	for i, it := range w.queue {
		ids[i] = it.id
	}

	return ids
}
