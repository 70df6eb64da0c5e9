// Package bipartite two-colours a graph with breadth-first search.
//
// Direction is ignored: every link joins its endpoints in both directions,
// so a directed graph is tested through its underlying undirected graph.
// Components are coloured in node order, each starting with color 0 (set A).
// The run stops at the first link whose endpoints share a color; a
// self-loop is such a link.
//
// Complexity: O(V + E).
package bipartite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every bipartite result.
const Algorithm = "bipartite"

// ErrNilGraph is returned when the input graph is nil.
var ErrNilGraph = errors.New("bipartite: graph is nil")

type colorer struct {
	g     *core.Graph
	adj   map[string][]string
	color map[string]int
	sets  trace.Bipartition
	rec   *trace.Recorder
}

// Check reports whether g is bipartite.
//
// One step is recorded per dequeued vertex ("Visit X with color c"); a
// conflict adds a final step naming the offending link. Result.Bipartition
// holds the color classes built so far, complete when the graph is
// bipartite.
func Check(g *core.Graph) (*trace.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := &colorer{
		g:     g,
		adj:   make(map[string][]string, g.NodeCount()),
		color: make(map[string]int, g.NodeCount()),
		sets:  trace.Bipartition{SetA: []string{}, SetB: []string{}},
		rec:   trace.NewRecorder(Algorithm),
	}
	for _, l := range g.Links() {
		c.adj[l.Source] = append(c.adj[l.Source], l.Target)
		c.adj[l.Target] = append(c.adj[l.Target], l.Source)
	}

	ok := true
	for _, id := range g.NodeIDs() {
		if _, seen := c.color[id]; seen {
			continue
		}
		if !c.bfs(id) {
			ok = false
			break
		}
	}
	if ok {
		c.rec.Log("Is a bipartite graph")
	} else {
		c.rec.Log("Not a bipartite graph")
	}

	res := c.rec.Result()
	res.IsBipartite = &ok
	res.Bipartition = &trace.Bipartition{SetA: c.sets.SetA, SetB: c.sets.SetB}

	return res, nil
}

func (c *colorer) assign(id string, color int) {
	c.color[id] = color
	if color == 0 {
		c.sets.SetA = append(c.sets.SetA, id)
	} else {
		c.sets.SetB = append(c.sets.SetB, id)
	}
}

// bfs colours the component of start and returns false on a conflict.
func (c *colorer) bfs(start string) bool {
	c.assign(start, 0)
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		c.rec.Step(fmt.Sprintf("Visit %s with color %d", c.g.Label(u), c.color[u]), trace.Snapshot{
			CurrentNode: u,
			Colors:      &c.sets,
		})
		for _, v := range c.adj[u] {
			cv, seen := c.color[v]
			if !seen {
				c.assign(v, 1-c.color[u])
				queue = append(queue, v)
				continue
			}
			if cv == c.color[u] {
				c.rec.Step(fmt.Sprintf("%s and %s share color %d", c.g.Label(u), c.g.Label(v), cv), trace.Snapshot{
					CurrentNode: u,
					CurrentEdge: &trace.Edge{Source: u, Target: v},
					Colors:      &c.sets,
				})
				return false
			}
		}
	}

	return true
}
