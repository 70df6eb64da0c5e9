package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// KruskalAlgorithm is the name recorded on Kruskal results.
const KruskalAlgorithm = "kruskal"

// Kruskal computes a minimum spanning tree (forest, if disconnected) of an
// undirected weighted graph.
//
// Steps:
//  1. Validate: non-nil, undirected.
//  2. Sort links by ascending weight with sort.SliceStable so that equal
//     weights keep their link order.
//  3. For each link: if its endpoints are in different components, union
//     them and accept the link; otherwise record the rejection.
//  4. Stop once |V|-1 links are accepted.
func Kruskal(g *core.Graph) (*trace.Result, error) {
	if err := validate(g, "Kruskal"); err != nil {
		return nil, err
	}

	links := g.Links()
	sort.SliceStable(links, func(i, j int) bool { return links[i].Weight < links[j].Weight })

	ids := g.NodeIDs()
	ds := newDisjointSet(ids)
	rec := trace.NewRecorder(KruskalAlgorithm)
	mst := make([]trace.Edge, 0, len(ids))
	var total float64

	rec.Step("Start Kruskal", trace.Snapshot{})
	for _, l := range links {
		if len(mst) == len(ids)-1 {
			break
		}
		edge := trace.Edge{Source: l.Source, Target: l.Target, Weight: l.Weight}
		text := edgeText(g, l.Source, l.Target, l.Weight)
		if !ds.union(l.Source, l.Target) {
			rec.Step("Skip edge "+text+": it would close a cycle", trace.Snapshot{
				CurrentEdge: &edge,
				MSTEdges:    mst,
			})
			continue
		}
		mst = append(mst, edge)
		total += l.Weight
		rec.Step("Add edge "+text, trace.Snapshot{CurrentEdge: &edge, MSTEdges: mst})
		rec.Log("Add " + text)
	}
	if len(ids) > 0 && len(mst) < len(ids)-1 {
		rec.Logf("Graph is disconnected: the forest has %d edges for %d vertices", len(mst), len(ids))
	}
	rec.Logf("Total weight: %s", trace.FormatNumber(total))

	res := rec.Result()
	res.MSTEdges = mst
	res.TotalWeight = &total

	return res, nil
}

// disjointSet is a union-find over vertex IDs.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the root of u, halving the path on the way. Iterative so
// that long chains cannot exhaust the stack.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. It reports false when they were
// already joined.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
