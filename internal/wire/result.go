package wire

import (
	"math"

	"github.com/katalvlaran/graphtrace/trace"
)

// Result is trace.Result as sent over the wire. encoding/json refuses
// non-finite floats, so distance maps are re-typed to pointers and
// unreachable (+Inf) entries become null. Spanning-tree and flow collections
// are always present (possibly empty) when their run produced a total.
type Result struct {
	*trace.Result
	Distances   map[string]*float64 `json:"distances,omitempty"`
	Steps       []Step              `json:"steps"`
	MSTEdges    *[]trace.Edge       `json:"mstLinks,omitempty"`
	FlowDetails *map[string]float64 `json:"flowDetails,omitempty"`
	FlowEdges   *[]trace.FlowEdge   `json:"flowEdges,omitempty"`
}

// Step is trace.Step with the same distance treatment.
type Step struct {
	trace.Step
	Distances map[string]*float64 `json:"distances,omitempty"`
}

// FromResult wraps r for encoding. r is not modified.
func FromResult(r *trace.Result) *Result {
	if r == nil {
		return nil
	}
	out := &Result{
		Result:    r,
		Distances: finite(r.Distances),
		Steps:     make([]Step, len(r.Steps)),
	}
	for i, s := range r.Steps {
		out.Steps[i] = Step{Step: s, Distances: finite(s.Distances)}
	}
	if r.TotalWeight != nil {
		mst := r.MSTEdges
		if mst == nil {
			mst = []trace.Edge{}
		}
		out.MSTEdges = &mst
	}
	if r.MaxFlow != nil {
		details, edges := r.FlowDetails, r.FlowEdges
		if details == nil {
			details = map[string]float64{}
		}
		if edges == nil {
			edges = []trace.FlowEdge{}
		}
		out.FlowDetails = &details
		out.FlowEdges = &edges
	}

	return out
}

// finite copies m, replacing NaN and ±Inf with nil.
func finite(m map[string]float64) map[string]*float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]*float64, len(m))
	for k, v := range m {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			out[k] = nil
			continue
		}
		out[k] = &v
	}

	return out
}
