package prim_kruskal

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// PrimAlgorithm is the name recorded on Prim results.
const PrimAlgorithm = "prim"

// Prim computes a minimum spanning tree by growing outwards from the root.
//
// Steps:
//  1. Validate: non-nil, undirected, root (if given) exists.
//  2. Mark the root visited and push its edges to unvisited neighbors.
//  3. While the heap is non-empty and some vertex is outside the tree, pop
//     the cheapest edge; skip it if its far end is visited, otherwise add it,
//     record a step and push the new vertex's frontier edges.
//
// An empty graph yields an empty result.
func Prim(g *core.Graph, opts ...Option) (*trace.Result, error) {
	if err := validate(g, "Prim"); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := trace.NewRecorder(PrimAlgorithm)
	ids := g.NodeIDs()
	if len(ids) == 0 {
		res := rec.Result()
		res.MSTEdges = []trace.Edge{}
		res.TotalWeight = new(float64)
		return res, nil
	}
	root := ids[0]
	if o.Root != "" {
		if !g.HasNode(o.Root) {
			return nil, fmt.Errorf("%w: root %q", core.ErrNotFound, o.Root)
		}
		root = o.Root
	}

	adj := g.Adjacency()
	n := len(ids)
	visited := map[string]bool{root: true}
	order := []string{root}
	mst := make([]trace.Edge, 0, n-1)
	var total float64

	pq := &edgePQ{}
	heap.Init(pq)
	push := func(u string) {
		for _, nb := range adj.Neighbors(u) {
			if !visited[nb.ID] {
				heap.Push(pq, primEdge{w: nb.Weight, u: u, v: nb.ID})
			}
		}
	}
	push(root)
	rec.Step("Start Prim from "+g.Label(root), trace.Snapshot{
		CurrentNode: root,
		Visited:     order,
		Heap:        pq.entries(),
	})

	for pq.Len() > 0 && len(order) < n {
		e := heap.Pop(pq).(primEdge)
		if visited[e.v] {
			continue
		}
		visited[e.v] = true
		order = append(order, e.v)
		mst = append(mst, trace.Edge{Source: e.u, Target: e.v, Weight: e.w})
		total += e.w
		push(e.v)

		text := edgeText(g, e.u, e.v, e.w)
		rec.Step("Add edge "+text, trace.Snapshot{
			CurrentNode: e.v,
			CurrentEdge: &trace.Edge{Source: e.u, Target: e.v, Weight: e.w},
			Visited:     order,
			MSTEdges:    mst,
			Heap:        pq.entries(),
		})
		rec.Log("Add " + text)
	}

	if len(order) < n {
		rec.Logf("Graph is disconnected: the tree spans %d of %d vertices", len(order), n)
	}
	rec.Logf("Total weight: %s", trace.FormatNumber(total))

	res := rec.Result()
	res.Visited = order
	res.MSTEdges = mst
	res.TotalWeight = &total

	return res, nil
}

// primEdge is a frontier edge u→v of weight w (u is inside the tree).
type primEdge struct {
	w    float64
	u, v string
}

func primLess(a, b primEdge) bool {
	if a.w != b.w {
		return a.w < b.w
	}
	if a.u != b.u {
		return a.u < b.u
	}

	return a.v < b.v
}

// edgePQ implements heap.Interface for a min-heap of primEdge ordered by
// (weight, source, target).
type edgePQ []primEdge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return primLess(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(primEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// entries renders the heap in priority order.
func (pq edgePQ) entries() []trace.HeapEntry {
	sorted := slices.Clone(pq)
	slices.SortFunc(sorted, func(a, b primEdge) int {
		switch {
		case primLess(a, b):
			return -1
		case primLess(b, a):
			return 1
		}

		return 0
	})
	out := make([]trace.HeapEntry, len(sorted))
	for i, e := range sorted {
		out[i] = trace.HeapEntry{Priority: e.w, Node: e.v, From: e.u}
	}

	return out
}
