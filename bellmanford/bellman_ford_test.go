package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/bellmanford"
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

func messages(steps []trace.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Message
	}

	return out
}

func TestBellmanFord_TreeEdgeWeightFromParallelLink(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", -1))

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []trace.Edge{{Source: "A", Target: "B", Weight: -1}}, res.TreeEdges)
	assert.Equal(t, -1.0, res.Distances["B"])
}

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, "A")
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	g := weighted(t, true, wedge{"A", "B", 1})
	_, err = bellmanford.BellmanFord(g, "")
	assert.ErrorIs(t, err, core.ErrMissingParameter)
	_, err = bellmanford.BellmanFord(g, "Q")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = bellmanford.BellmanFord(g, "A", bellmanford.WithEnd("Q"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 1}, wedge{"B", "C", -3}, wedge{"C", "A", 1})

	res, err := bellmanford.BellmanFord(g, "A")
	require.ErrorIs(t, err, core.ErrNegativeCycle)
	require.NotNil(t, res, "partial trace is returned with the error")
	assert.NotEmpty(t, res.Steps)
	assert.Contains(t, res.Steps[len(res.Steps)-1].Message, "Negative cycle detected")
}

func TestBellmanFord_NegativeWeightsWithoutCycle(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 4}, wedge{"A", "C", 2}, wedge{"C", "B", -3}, wedge{"B", "D", 1})

	res, err := bellmanford.BellmanFord(g, "A", bellmanford.WithEnd("D"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": -1, "C": 2, "D": 0}, res.Distances)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Path)
	assert.Equal(t, "Bellman-Ford finished", res.Logs[len(res.Logs)-1])
}

// TestBellmanFord_SnapshotRounds: C is two hops away so it is only relaxed in
// round two, even though B→C is swept after A→B in round one.
func TestBellmanFord_SnapshotRounds(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 1})
	require.NoError(t, g.AddNode(core.Node{ID: "D"}))

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Start Bellman-Ford from A",
		"Relax A → B: 1",
		"Relax B → C: 2",
		"No updates, the algorithm has converged",
	}, messages(res.Steps))
	assert.Equal(t, []string{
		"Start Bellman-Ford from A",
		"Initialise: d[A] = 0, all other vertices = ∞",
		"--- Round 1 ---",
		"Relax A → B: 1",
		"--- Round 2 ---",
		"Relax B → C: 2",
		"--- Round 3 ---",
		"No updates, the algorithm has converged",
		"Bellman-Ford finished",
	}, res.Logs)
	assert.True(t, math.IsInf(res.Distances["D"], 1))
}

// TestBellmanFord_BestCandidateWins: of two parallel links the cheaper one is
// applied, once.
func TestBellmanFord_BestCandidateWins(t *testing.T) {
	g := weighted(t, true, wedge{"A", "B", 5}, wedge{"A", "B", 2})

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distances["B"])
	assert.Equal(t, []string{"Start Bellman-Ford from A", "Relax A → B: 2"}, messages(res.Steps))
	assert.Equal(t, trace.Edge{Source: "A", Target: "B", Weight: 2}, *res.Steps[1].CurrentEdge)
}

func TestBellmanFord_UndirectedUsesBothDirections(t *testing.T) {
	g := weighted(t, false, wedge{"B", "A", 3}, wedge{"C", "B", 1})

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 3, "C": 4}, res.Distances)
	assert.Equal(t, []trace.Edge{
		{Source: "A", Target: "B", Weight: 3},
		{Source: "B", Target: "C", Weight: 1},
	}, res.TreeEdges)
}

// TestBellmanFord_MatchesDijkstra compares distances on non-negative graphs.
func TestBellmanFord_MatchesDijkstra(t *testing.T) {
	graphs := map[string]*core.Graph{
		"undirected": weighted(t, false,
			wedge{"1", "2", 7}, wedge{"1", "3", 9}, wedge{"1", "6", 14},
			wedge{"2", "3", 10}, wedge{"2", "4", 15}, wedge{"3", "4", 11},
			wedge{"3", "6", 2}, wedge{"4", "5", 6}, wedge{"5", "6", 9}),
		"directed": weighted(t, true,
			wedge{"s", "a", 2}, wedge{"s", "b", 5}, wedge{"a", "b", 1},
			wedge{"b", "c", 0}, wedge{"c", "a", 3}, wedge{"d", "s", 1}),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			for _, start := range g.NodeIDs() {
				bf, err := bellmanford.BellmanFord(g, start)
				require.NoError(t, err)
				dj, err := dijkstra.Dijkstra(g, start)
				require.NoError(t, err)
				assert.Equal(t, dj.Distances, bf.Distances, "start %s", start)
			}
		})
	}
}
