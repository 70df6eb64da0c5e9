package dfs

import (
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every DFS result.
const Algorithm = "dfs"

type frame struct {
	id     string
	parent string
}

// walker encapsulates state during DFS.
type walker struct {
	graph   *core.Graph
	adj     *core.Adjacency
	rec     *trace.Recorder
	stack   []frame
	visited map[string]bool
	order   []string
	edges   []trace.Edge
}

// DFS traverses g depth-first from startID. Vertices unreachable from
// startID are absent from Visited unless WithFullTraversal is set.
func DFS(g *core.Graph, startID string, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.RequireNode("start", startID); err != nil {
		return nil, err
	}

	w := &walker{
		graph:   g,
		adj:     g.Adjacency(),
		rec:     trace.NewRecorder(Algorithm),
		visited: make(map[string]bool, g.NodeCount()),
		order:   make([]string, 0, g.NodeCount()),
	}
	w.traverse(startID)
	if o.FullTraversal {
		for _, id := range w.adj.Order() {
			if !w.visited[id] {
				w.traverse(id)
			}
		}
	}

	res := w.rec.Result()
	res.Visited = w.order
	res.TraversedEdges = w.edges

	return res, nil
}

// traverse runs one stack-driven tree from root.
func (w *walker) traverse(root string) {
	w.stack = append(w.stack[:0], frame{id: root})
	w.rec.Step("Start DFS from "+w.graph.Label(root), trace.Snapshot{Stack: w.stackIDs()})

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.id] {
			continue
		}

		w.visited[top.id] = true
		w.order = append(w.order, top.id)
		if top.parent != "" {
			w.edges = append(w.edges, trace.Edge{Source: top.parent, Target: top.id})
		}
		w.rec.Narrate("Visit "+w.graph.Label(top.id), trace.Snapshot{
			CurrentNode: top.id,
			Visited:     w.order,
			Stack:       w.stackIDs(),
		})

		nbs := w.adj.Neighbors(top.id)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if w.visited[nb.ID] {
				continue
			}
			w.stack = append(w.stack, frame{id: nb.ID, parent: top.id})
			w.rec.Step("Push "+w.graph.Label(nb.ID)+" onto the stack", trace.Snapshot{
				CurrentNode: top.id,
				CurrentEdge: &trace.Edge{Source: top.id, Target: nb.ID},
				Stack:       w.stackIDs(),
			})
		}
	}
}

func (w *walker) stackIDs() []string {
	ids := make([]string, len(w.stack))
	for i, f := range w.stack {
		ids[i] = f.id
	}

	return ids
}
