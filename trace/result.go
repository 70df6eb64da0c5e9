package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
)

// Result is the outcome of one algorithm run: ordered logs and steps plus the
// named outputs relevant to that algorithm. Fields an algorithm does not
// produce stay at their zero value and are omitted from JSON.
type Result struct {
	Algorithm string   `json:"algorithm"`
	Logs      []string `json:"logs"`
	Steps     []Step   `json:"steps"`

	// Traversal.
	Visited        []string `json:"visited,omitempty"`
	TraversedEdges []Edge   `json:"traversedEdges,omitempty"`

	// Shortest paths. Distances holds +Inf for unreachable nodes; Previous
	// only contains nodes that have a predecessor.
	Path      []string           `json:"path,omitempty"`
	Distances map[string]float64 `json:"distances,omitempty"`
	Previous  map[string]string  `json:"previous,omitempty"`
	TreeEdges []Edge             `json:"treeLinks,omitempty"`

	// Spanning trees. TotalWeight is non-nil whenever a tree was built, so a
	// zero total is still reported.
	MSTEdges    []Edge   `json:"mstLinks,omitempty"`
	TotalWeight *float64 `json:"totalWeight,omitempty"`

	// Max flow. FlowDetails is keyed "source-target". MaxFlow is non-nil
	// whenever the run completed, including a flow of zero.
	MaxFlow     *float64           `json:"maxFlow,omitempty"`
	FlowDetails map[string]float64 `json:"flowDetails,omitempty"`
	FlowEdges   []FlowEdge         `json:"flowEdges,omitempty"`

	// Euler.
	EulerPath []string `json:"eulerPath,omitempty"`

	// Bipartite. IsBipartite is a pointer so that "false" survives omitempty.
	IsBipartite *bool        `json:"isBipartite,omitempty"`
	Bipartition *Bipartition `json:"bipartiteSets,omitempty"`
}

// Distance returns the final distance to id.
//
// Errors:
//   - core.ErrNotFound: id has no distance entry.
//   - core.ErrUnreachable: id was never reached from the start.
func (r *Result) Distance(id string) (float64, error) {
	d, ok := r.Distances[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", core.ErrNotFound, id)
	}
	if math.IsInf(d, 1) {
		return d, fmt.Errorf("%w: %q", core.ErrUnreachable, id)
	}

	return d, nil
}

// Bipartite reports the bipartite flag; false when the run did not set it.
func (r *Result) Bipartite() bool {
	return r.IsBipartite != nil && *r.IsBipartite
}

// Total returns the spanning-tree weight; zero when the run did not set it.
func (r *Result) Total() float64 {
	if r.TotalWeight == nil {
		return 0
	}
	return *r.TotalWeight
}

// Flow returns the maximum flow value; zero when the run did not set it.
func (r *Result) Flow() float64 {
	if r.MaxFlow == nil {
		return 0
	}
	return *r.MaxFlow
}

// EdgeKey renders the "source-target" key used by flow maps.
func EdgeKey(source, target string) string {
	return source + "-" + target
}
