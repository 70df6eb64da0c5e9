package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Algorithm is the name recorded on every max-flow result.
const Algorithm = "ford_fulkerson"

// arc is one residual arc. Spare capacity is capacity − flow; a reverse arc
// has capacity 0 and negative flow once its partner carries flow.
type arc struct {
	from, to string
	capacity float64
	flow     float64
	rev      int // index of the paired arc
	link     int // index of the originating link, or -1 for reverse arcs
}

// network holds the residual arcs and their per-vertex index lists.
type network struct {
	arcs []arc
	out  map[string][]int
}

// newNetwork builds the residual network of g. Forward arcs of each vertex
// come first in link order, then its reverse arcs in link order.
func newNetwork(g *core.Graph, links []core.Link) *network {
	n := &network{
		arcs: make([]arc, 0, 2*len(links)),
		out:  make(map[string][]int, g.NodeCount()),
	}
	for i, l := range links {
		f := len(n.arcs)
		n.arcs = append(n.arcs,
			arc{from: l.Source, to: l.Target, capacity: l.Cap(), rev: f + 1, link: i},
			arc{from: l.Target, to: l.Source, rev: f, link: -1},
		)
		n.out[l.Source] = append(n.out[l.Source], f)
	}
	for i := range links {
		r := 2*i + 1
		n.out[n.arcs[r].from] = append(n.out[n.arcs[r].from], r)
	}

	return n
}

func (n *network) spare(i int) float64 {
	return n.arcs[i].capacity - n.arcs[i].flow
}

// augmentingPath runs a BFS from source over arcs with spare capacity
// above eps and returns the arc indices of the first path reaching sink,
// or nil when none exists.
func (n *network) augmentingPath(source, sink string, eps float64) []int {
	via := map[string]int{source: -1}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range n.out[u] {
			v := n.arcs[i].to
			if _, seen := via[v]; seen || n.spare(i) <= eps {
				continue
			}
			via[v] = i
			if v == sink {
				var path []int
				for cur := sink; cur != source; cur = n.arcs[via[cur]].from {
					path = append(path, via[cur])
				}
				for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
					path[l], path[r] = path[r], path[l]
				}
				return path
			}
			queue = append(queue, v)
		}
	}

	return nil
}

// FordFulkerson computes the maximum flow from source to sink.
//
// Validation happens before any step is recorded: nil graph, invalid
// options, undirected graph, missing or unknown endpoints, equal endpoints,
// negative capacities.
func FordFulkerson(g *core.Graph, source, sink string, opts ...Option) (*trace.Result, error) {
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
	if !g.Directed() {
		return nil, fmt.Errorf("flow: %w: Ford-Fulkerson requires a directed graph", core.ErrDirection)
	}
	if err := g.RequireNode("source", source); err != nil {
		return nil, err
	}
	if err := g.RequireNode("sink", sink); err != nil {
		return nil, err
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %q", ErrSourceIsSink, source)
	}
	links := g.Links()
	for _, l := range links {
		if l.Cap() < 0 {
			return nil, fmt.Errorf("flow: %w: link %s→%s capacity=%s",
				core.ErrInvalidWeight, l.Source, l.Target, trace.FormatNumber(l.Cap()))
		}
	}

	net := newNetwork(g, links)
	rec := trace.NewRecorder(Algorithm)
	rec.Step(fmt.Sprintf("Start Ford-Fulkerson from %s to %s", g.Label(source), g.Label(sink)), trace.Snapshot{
		CurrentNode: source,
	})

	var total float64
	for round := 1; cfg.MaxAugmentations == 0 || round <= cfg.MaxAugmentations; round++ {
		path := net.augmentingPath(source, sink, cfg.Epsilon)
		if path == nil {
			break
		}

		bottleneck := math.Inf(1)
		for _, i := range path {
			bottleneck = math.Min(bottleneck, net.spare(i))
		}
		nodes := []string{source}
		edges := make([]trace.Edge, 0, len(path))
		pushed := make(map[string]float64, len(path))
		for _, i := range path {
			a := &net.arcs[i]
			a.flow += bottleneck
			net.arcs[a.rev].flow -= bottleneck
			nodes = append(nodes, a.to)
			edges = append(edges, trace.Edge{Source: a.from, Target: a.to})
			pushed[trace.EdgeKey(a.from, a.to)] = bottleneck
		}
		total += bottleneck

		msg := fmt.Sprintf("Iteration %d: %s, augment = %s, total = %s", round,
			trace.JoinLabels(nodes, g.Label), trace.FormatNumber(bottleneck), trace.FormatNumber(total))
		rec.Narrate(msg, trace.Snapshot{
			Path:         nodes,
			VisitedEdges: edges,
			Flow:         pushed,
		})
	}
	rec.Logf("Maximum flow: %s", trace.FormatNumber(total))

	res := rec.Result()
	res.MaxFlow = &total
	res.FlowDetails = make(map[string]float64)
	res.FlowEdges = []trace.FlowEdge{}
	for _, a := range net.arcs {
		if a.link < 0 || a.flow <= cfg.Epsilon {
			continue
		}
		res.FlowDetails[trace.EdgeKey(a.from, a.to)] += a.flow
		res.FlowEdges = append(res.FlowEdges, trace.FlowEdge{
			Source:   a.from,
			Target:   a.to,
			Flow:     a.flow,
			Capacity: a.capacity,
		})
	}

	return res, nil
}
