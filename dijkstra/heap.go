package dijkstra

import (
	"slices"

	"github.com/katalvlaran/graphtrace/trace"
)

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
// Stale entries stay in the heap and are ignored when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// entries renders the heap contents in priority order for a snapshot.
func (pq nodePQ) entries() []trace.HeapEntry {
	sorted := slices.Clone(pq)
	slices.SortFunc(sorted, func(a, b nodeItem) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		}
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}

		return 0
	})

	out := make([]trace.HeapEntry, len(sorted))
	for i, it := range sorted {
		out[i] = trace.HeapEntry{Priority: it.dist, Node: it.id}
	}

	return out
}
