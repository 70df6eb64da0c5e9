package converters

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
)

// Matrix is an adjacency matrix with its row/column headers.
// IDs[i] and Labels[i] describe row and column i.
type Matrix struct {
	IDs    []string    `json:"ids"`
	Labels []string    `json:"labels"`
	Data   [][]float64 `json:"matrix"`
}

// ToAdjacencyMatrix renders g as a matrix ordered by core.NaturalLess on
// node IDs. Parallel links overwrite earlier ones in link order; self-loops
// are left out so the diagonal stays zero. A zero-weight link is only
// visible with WithPresence.
// Complexity: O(V² + L).
func ToAdjacencyMatrix(g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolve(opts)

	ids := g.NodeIDs()
	core.SortNatural(ids)
	index := make(map[string]int, len(ids))
	m := &Matrix{IDs: ids, Labels: make([]string, len(ids)), Data: make([][]float64, len(ids))}
	for i, id := range ids {
		index[id] = i
		m.Labels[i] = g.Label(id)
		m.Data[i] = make([]float64, len(ids))
	}

	directed := g.Directed()
	for _, l := range g.Links() {
		if l.Source == l.Target {
			continue
		}
		v := l.Weight
		if o.Presence {
			v = 1
		}
		i, j := index[l.Source], index[l.Target]
		m.Data[i][j] = v
		if !directed {
			m.Data[j][i] = v
		}
	}

	return m, nil
}

// validateMatrix checks shape, diagonal and finiteness in that order.
func validateMatrix(data [][]float64) error {
	n := len(data)
	for i, row := range data {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidMatrix, i, len(row), n)
		}
	}
	for i := range data {
		if data[i][i] != 0 {
			return fmt.Errorf("%w: diagonal entry [%d][%d] = %g", ErrInvalidMatrix, i, i, data[i][i])
		}
	}
	for i, row := range data {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: entry [%d][%d] is not finite", ErrInvalidMatrix, i, j)
			}
		}
	}

	return nil
}

// FromAdjacencyMatrix synthesises a graph from data. Every entry > 0
// becomes a link weighted by that entry; undirected graphs read only the
// upper triangle. labels may be nil (labels then equal the IDs "1".."n");
// repeated labels still yield distinct nodes.
//
// Errors: ErrInvalidMatrix, ErrLabelCount, ErrEmptyLabel.
// Complexity: O(n²).
func FromAdjacencyMatrix(data [][]float64, directed bool, labels []string, opts ...Option) (*core.Graph, error) {
	if err := validateMatrix(data); err != nil {
		return nil, err
	}
	n := len(data)
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(labels), n)
	}

	s := newSynth(directed, resolve(opts))
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		label := fmt.Sprint(i + 1)
		if labels != nil {
			label = labels[i]
		}
		id, err := s.fresh(label)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	for i := 0; i < n; i++ {
		from := 0
		if !directed {
			from = i + 1
		}
		for j := from; j < n; j++ {
			if data[i][j] > 0 {
				if err := s.link(ids[i], ids[j], data[i][j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return s.g, nil
}
