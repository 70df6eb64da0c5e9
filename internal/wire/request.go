package wire

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/graphtrace/converters"
	"github.com/katalvlaran/graphtrace/core"
)

// Conversion source formats accepted in ConvertRequest.TypeFrom.
const (
	FromMatrix   = "matrix"
	FromEdgeList = "edge_list"
	FromAdjList  = "adj_list"
)

// AlgoRequest is the body of the start/end algorithm endpoints.
type AlgoRequest struct {
	Graph   *Graph `json:"graph" validate:"required"`
	StartID string `json:"startId,omitempty"`
	EndID   string `json:"endId,omitempty"`
}

// Validate checks the request shape and the embedded graph.
func (r *AlgoRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return classifyRequest(err)
	}

	return nil
}

// ConvertRequest is the body of the from_* endpoints. Data holds a matrix,
// an edge list or an adjacency list depending on TypeFrom.
type ConvertRequest struct {
	Data       json.RawMessage `json:"data" validate:"required"`
	IsDirected bool            `json:"isDirected"`
	TypeFrom   string          `json:"typeFrom" validate:"required,oneof=matrix edge_list adj_list"`
	Labels     []string        `json:"labels,omitempty" validate:"omitempty,dive,required"`
}

// Validate checks the request shape.
func (r *ConvertRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, Describe(err))
	}

	return nil
}

// Build decodes Data according to TypeFrom and synthesises the graph.
func (r *ConvertRequest) Build(opts ...converters.Option) (*core.Graph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	switch r.TypeFrom {
	case FromMatrix:
		var m [][]float64
		if err := json.Unmarshal(r.Data, &m); err != nil {
			return nil, fmt.Errorf("%w: matrix: %w", ErrBadRequest, err)
		}
		return converters.FromAdjacencyMatrix(m, r.IsDirected, r.Labels, opts...)
	case FromEdgeList:
		var triples []converters.Triple
		if err := json.Unmarshal(r.Data, &triples); err != nil {
			return nil, fmt.Errorf("%w: edge list: %w", ErrBadRequest, err)
		}
		return converters.FromEdgeList(triples, r.IsDirected, opts...)
	default:
		list := converters.NewAdjacencyList()
		if err := json.Unmarshal(r.Data, list); err != nil {
			return nil, fmt.Errorf("%w: adjacency list: %w", ErrBadRequest, err)
		}
		return converters.FromAdjacencyList(list, r.IsDirected, opts...)
	}
}

// classifyRequest keeps a missing graph distinct from a bad graph.
func classifyRequest(err error) error {
	if fe := firstFailure(err); fe != "" && fe == "AlgoRequest.Graph" {
		return fmt.Errorf("%w: graph", core.ErrMissingParameter)
	}

	return classify(err)
}
