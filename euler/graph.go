package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// ErrNilGraph is returned when the input graph is nil.
var ErrNilGraph = errors.New("euler: graph is nil")

// edge is one undirected link, addressed by its index in multigraph.edges.
type edge struct {
	u, v string
}

// other returns the endpoint of e opposite to x.
func (e edge) other(x string) string {
	if e.u == x {
		return e.v
	}
	return e.u
}

// multigraph is the consumable edge set shared by both walkers. inc lists
// the edge ids incident to each vertex; a self-loop is listed twice.
type multigraph struct {
	order []string
	edges []edge
	used  []bool
	inc   map[string][]int
	left  int
}

func newMultigraph(g *core.Graph) *multigraph {
	links := g.Links()
	m := &multigraph{
		order: g.NodeIDs(),
		edges: make([]edge, len(links)),
		used:  make([]bool, len(links)),
		inc:   make(map[string][]int, g.NodeCount()),
		left:  len(links),
	}
	for i, l := range links {
		m.edges[i] = edge{u: l.Source, v: l.Target}
		m.inc[l.Source] = append(m.inc[l.Source], i)
		m.inc[l.Target] = append(m.inc[l.Target], i)
	}

	return m
}

func (m *multigraph) degree(id string) int { return len(m.inc[id]) }

// oddVertices returns the odd-degree vertices in node order.
func (m *multigraph) oddVertices() []string {
	var odd []string
	for _, id := range m.order {
		if m.degree(id)%2 == 1 {
			odd = append(odd, id)
		}
	}
	return odd
}

// firstWithEdges returns the first vertex in node order with non-zero
// degree, or the first vertex when there are no edges at all.
func (m *multigraph) firstWithEdges() string {
	for _, id := range m.order {
		if m.degree(id) > 0 {
			return id
		}
	}
	if len(m.order) > 0 {
		return m.order[0]
	}
	return ""
}

// component returns the vertices reachable from src over unused edges.
func (m *multigraph) component(src string) map[string]bool {
	seen := map[string]bool{src: true}
	queue := []string{src}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, id := range m.inc[x] {
			if m.used[id] {
				continue
			}
			if y := m.edges[id].other(x); !seen[y] {
				seen[y] = true
				queue = append(queue, y)
			}
		}
	}
	return seen
}

// unused returns the unused edge ids incident to x, in incidence order,
// with each self-loop reported once.
func (m *multigraph) unused(x string) []int {
	var out []int
	var last = -1
	for _, id := range m.inc[x] {
		if m.used[id] || id == last {
			continue
		}
		out = append(out, id)
		last = id
	}
	return out
}

func (m *multigraph) consume(id int) {
	m.used[id] = true
	m.left--
}

// checkFeasible validates direction, the odd-degree count against allowed,
// and connectivity of the edge set.
func checkFeasible(g *core.Graph, pkg string, allowedOdd ...int) (*multigraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: %w: requires an undirected graph", pkg, core.ErrDirection)
	}

	m := newMultigraph(g)
	odd := len(m.oddVertices())
	ok := false
	for _, a := range allowedOdd {
		ok = ok || odd == a
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w: %d vertices of odd degree", pkg, core.ErrEulerInfeasible, odd)
	}

	start := m.firstWithEdges()
	reached := m.component(start)
	for _, id := range m.order {
		if m.degree(id) > 0 && !reached[id] {
			return nil, fmt.Errorf("%s: %w: edges of %s and %s are disconnected",
				pkg, core.ErrEulerInfeasible, start, id)
		}
	}

	return m, nil
}

// edgeOf renders the walked direction of an edge for snapshots.
func edgeOf(from, to string) trace.Edge {
	return trace.Edge{Source: from, Target: to}
}
