package core_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/core"
)

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)
	require.NoError(t, g.AddNode(core.Node{ID: "A"}))
	require.ErrorIs(t, g.AddNode(core.Node{ID: "A", Label: "again"}), core.ErrDuplicateNode)
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddLink_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "A"}))

	err := g.AddLink(core.Link{Source: "A", Target: "B", Weight: 1})
	require.ErrorIs(t, err, core.ErrNotFound)
	err = g.AddLink(core.Link{Source: "X", Target: "A", Weight: 1})
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Zero(t, g.LinkCount())
}

func TestAddEdge_AutoCreatesNodes(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 3, core.WithCapacity(7)))

	assert.True(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())

	links := g.Links()
	require.Len(t, links, 2)
	assert.Equal(t, 2.0, links[0].Cap(), "capacity defaults to weight")
	assert.Equal(t, 7.0, links[1].Cap())
	require.ErrorIs(t, g.AddEdge("", "A", 1), core.ErrEmptyNodeID)
}

func TestLabel_DefaultsToID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "1", Label: "Hanoi"}))
	require.NoError(t, g.AddNode(core.Node{ID: "2"}))

	assert.Equal(t, "Hanoi", g.Label("1"))
	assert.Equal(t, "2", g.Label("2"))
	assert.Equal(t, "ghost", g.Label("ghost"))
	assert.Equal(t, map[string]string{"1": "Hanoi", "2": "2"}, g.Labels())
}

func TestRequireNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "A"}))

	assert.ErrorIs(t, g.RequireNode("start", ""), core.ErrMissingParameter)
	assert.ErrorIs(t, g.RequireNode("start", "Z"), core.ErrNotFound)
	assert.NoError(t, g.RequireNode("start", "A"))
}

func TestLinks_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	links := g.Links()
	links[0].Weight = 99
	assert.Equal(t, 1.0, g.Links()[0].Weight)
}

func TestAdjacency_UndirectedOrder(t *testing.T) {
	// A–B, C–A, B–C: A's list must be [B, C] (B from link 0, C from link 1).
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "A", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	adj := g.Adjacency()
	ids := func(id string) []string {
		var out []string
		for _, n := range adj.Neighbors(id) {
			out = append(out, n.ID)
		}
		return out
	}
	assert.Equal(t, []string{"A", "B", "C"}, adj.Order())
	assert.Equal(t, []string{"B", "C"}, ids("A"))
	assert.Equal(t, []string{"A", "C"}, ids("B"))
	assert.Equal(t, []string{"A", "B"}, ids("C"))
	assert.Equal(t, 2, adj.Degree("A"))
}

func TestAdjacency_DirectedAndIsolated(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 4, core.WithCapacity(9)))
	require.NoError(t, g.AddNode(core.Node{ID: "Z"}))

	adj := g.Adjacency()
	require.Len(t, adj.Neighbors("A"), 1)
	assert.Equal(t, core.Neighbor{ID: "B", Weight: 4, Capacity: 9}, adj.Neighbors("A")[0])
	assert.Empty(t, adj.Neighbors("B"))
	assert.NotNil(t, adj.Neighbors("Z"))
	assert.Zero(t, adj.Degree("Z"))
}

func TestAdjacency_SelfLoopCountsTwice(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 1))
	assert.Equal(t, 2, g.Adjacency().Degree("A"))
}

func TestGraphJSON_RoundTrip(t *testing.T) {
	body := `{
		"nodes": [{"id":"1","label":"S","x":10,"y":20,"type":"router"},{"id":"2","x":0,"y":0}],
		"links": [{"source":"1","target":"2","weight":5,"capacity":8}],
		"isDirected": true
	}`
	var g core.Graph
	require.NoError(t, json.Unmarshal([]byte(body), &g))
	assert.True(t, g.Directed())
	assert.Equal(t, "S", g.Label("1"))
	assert.Equal(t, 8.0, g.Links()[0].Cap())

	out, err := json.Marshal(&g)
	require.NoError(t, err)

	var back core.Graph
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, g.Document(), back.Document())
}

func TestGraphJSON_RejectsDanglingLink(t *testing.T) {
	body := `{"nodes":[{"id":"1"}],"links":[{"source":"1","target":"9","weight":1}],"isDirected":false}`
	var g core.Graph
	err := json.Unmarshal([]byte(body), &g)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestNaturalLess(t *testing.T) {
	s := []string{"B", "10", "2", "A", "1"}
	core.SortNatural(s)
	assert.Equal(t, []string{"1", "2", "10", "A", "B"}, s)
}

// TestConcurrentReaders builds adjacency tables from many goroutines while
// another goroutine keeps appending nodes; run with -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				adj := g.Adjacency()
				_ = adj.Neighbors("A")
				_ = g.Links()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			_ = g.AddNode(core.Node{ID: "n" + string(rune('a'+j%26)) + string(rune('a'+j/26))})
		}
	}()
	wg.Wait()
	assert.Equal(t, 102, g.NodeCount())
}

func TestGridPosition(t *testing.T) {
	x, y := core.GridPosition(0)
	assert.Equal(t, [2]float64{100, 100}, [2]float64{x, y})
	x, y = core.GridPosition(7)
	assert.Equal(t, [2]float64{400, 250}, [2]float64{x, y})
}
