package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dijkstra"
	"github.com/katalvlaran/graphtrace/trace"
)

type wedge struct {
	from, to string
	w        float64
}

func weighted(t *testing.T, directed bool, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

func city(t *testing.T) *core.Graph {
	return weighted(t, false,
		wedge{"A", "B", 4}, wedge{"A", "C", 1}, wedge{"C", "B", 2},
		wedge{"B", "D", 5}, wedge{"C", "D", 8})
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := city(t)
	_, err = dijkstra.Dijkstra(g, "")
	assert.ErrorIs(t, err, core.ErrMissingParameter)
	_, err = dijkstra.Dijkstra(g, "Z")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = dijkstra.Dijkstra(g, "A", dijkstra.WithEnd("Z"))
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// TestDijkstra_RejectsUnreachableNegativeLink: the negative link lies in a
// separate component and must still be rejected.
func TestDijkstra_RejectsUnreachableNegativeLink(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 1}, wedge{"X", "Y", -2})

	res, err := dijkstra.Dijkstra(g, "A")
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Nil(t, res)
}

func TestDijkstra_PathAndDistances(t *testing.T) {
	res, err := dijkstra.Dijkstra(city(t), "A", dijkstra.WithEnd("D"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Path)
	d, err := res.Distance("D")
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)
	assert.Equal(t, "Shortest path: A → C → B → D (8)", res.Logs[len(res.Logs)-1])
	assert.Nil(t, res.TreeEdges)
}

func TestDijkstra_StopsAtEnd(t *testing.T) {
	res, err := dijkstra.Dijkstra(city(t), "A", dijkstra.WithEnd("C"))
	require.NoError(t, err)
	// A then C are popped; nothing past C is finalised.
	assert.Equal(t, []string{"A", "C"}, res.Visited)
	assert.Equal(t, []string{"A", "C"}, res.Path)
}

func TestDijkstra_UnreachableEndIsSoft(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 1}, wedge{"C", "A", 1})

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithEnd("C"))
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Distances["C"], 1))
	_, err = res.Distance("C")
	assert.ErrorIs(t, err, core.ErrUnreachable)
	assert.Equal(t, "C is unreachable from A", res.Logs[len(res.Logs)-1])
}

func TestDijkstra_TreeEdgesWithoutEnd(t *testing.T) {
	res, err := dijkstra.Dijkstra(city(t), "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 3, "C": 1, "D": 8}, res.Distances)
	assert.Equal(t, map[string]string{"B": "C", "C": "A", "D": "B"}, res.Previous)
	assert.Equal(t, []trace.Edge{
		{Source: "C", Target: "B", Weight: 2},
		{Source: "A", Target: "C", Weight: 1},
		{Source: "B", Target: "D", Weight: 5},
	}, res.TreeEdges)
	assert.Nil(t, res.Path)
}

func TestDijkstra_TreeEdgeWeightFromParallelLink(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []trace.Edge{{Source: "A", Target: "B", Weight: 2}}, res.TreeEdges)
	assert.Equal(t, 2.0, res.Distances["B"])
}

func TestDijkstra_RelaxationSteps(t *testing.T) {
	res, err := dijkstra.Dijkstra(city(t), "A")
	require.NoError(t, err)

	var relax []trace.Step
	for _, s := range res.Steps {
		if s.CurrentEdge != nil {
			relax = append(relax, s)
		}
	}
	require.NotEmpty(t, relax)
	first := relax[0]
	assert.Equal(t, "Update distance to B: 4", first.Message)
	assert.Equal(t, trace.Edge{Source: "A", Target: "B", Weight: 4}, *first.CurrentEdge)
	// The heap snapshot is in priority order.
	assert.Equal(t, []trace.HeapEntry{{Priority: 4, Node: "B"}}, first.Heap)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := weighted(t, false, wedge{"A", "B", 100}, wedge{"A", "C", 1}, wedge{"C", "B", 1})
	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithEnd("B"), dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, res.Path)
}
