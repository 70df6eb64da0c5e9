package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/trace"
)

func build(t *testing.T, directed bool, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, false, [2]string{"A", "B"})
	_, err = dfs.DFS(g, "")
	assert.ErrorIs(t, err, core.ErrMissingParameter)
	_, err = dfs.DFS(g, "Z")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDFS_FirstNeighborExploredFirst(t *testing.T) {
	// A–B, A–C, B–D: B is A's first neighbor so the B subtree comes before C.
	g := build(t, false, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Visited)
	assert.Equal(t, []trace.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "D"},
		{Source: "A", Target: "C"},
	}, res.TraversedEdges)

	// Pushes after visiting A: C first, then B on top.
	require.GreaterOrEqual(t, len(res.Steps), 4)
	assert.Equal(t, "Push C onto the stack", res.Steps[2].Message)
	assert.Equal(t, "Push B onto the stack", res.Steps[3].Message)
	assert.Equal(t, []string{"C", "B"}, res.Steps[3].Stack)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"C", "D"})

	single, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, single.Visited)

	forest, err := dfs.DFS(g, "A", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, forest.Visited)
}

// TestDFS_SameSetAsBFS checks that both traversals reach the same vertices.
func TestDFS_SameSetAsBFS(t *testing.T) {
	cases := map[string]*core.Graph{
		"undirected": build(t, false,
			[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "1"},
			[2]string{"3", "4"}, [2]string{"5", "6"}),
		"directed": build(t, true,
			[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"4", "1"},
			[2]string{"3", "5"}, [2]string{"5", "2"}),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			for _, start := range g.NodeIDs() {
				d, err := dfs.DFS(g, start)
				require.NoError(t, err)
				b, err := bfs.BFS(g, start)
				require.NoError(t, err)
				assert.ElementsMatch(t, b.Visited, d.Visited, "start %s", start)
			}
		})
	}
}
