package euler_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/euler"
	"github.com/katalvlaran/graphtrace/trace"
)

func undirected(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(pairs); i += 2 {
		require.NoError(t, g.AddEdge(pairs[i], pairs[i+1], 1))
	}
	return g
}

// bowtie is two triangles sharing C.
func bowtie(t *testing.T) *core.Graph {
	return undirected(t, "A", "B", "B", "C", "C", "A", "C", "D", "D", "E", "E", "C")
}

// requireEulerWalk checks that consecutive vertices of path consume every
// link of g exactly once.
func requireEulerWalk(t *testing.T, g *core.Graph, path []string) {
	t.Helper()
	key := func(a, b string) string {
		if b < a {
			a, b = b, a
		}
		return a + "|" + b
	}
	var want, got []string
	for _, l := range g.Links() {
		want = append(want, key(l.Source, l.Target))
	}
	for i := 0; i+1 < len(path); i++ {
		got = append(got, key(path[i], path[i+1]))
	}
	sort.Strings(want)
	sort.Strings(got)
	require.Equal(t, want, got)
}

func TestHierholzer_Bowtie(t *testing.T) {
	res, err := euler.Hierholzer(bowtie(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "C", "A"}, res.EulerPath)
	assert.Equal(t, []string{
		"B1: Build the initial circuit R1 from A",
		"B1: R1 = A → B → C → A",
		"B2: R1 does not cover every edge yet",
		"B3: Choose v1 = C in R1 (unused edges remain)",
		"B4: Build sub-circuit Q1 from v1",
		"B4: Q1 = C → D → E → C",
		"B5: Merge Q into R → R2 = A → B → C → D → E → C → A",
		"B6: i = 2, back to B2",
		"B2: Done, Euler circuit: A → B → C → D → E → C → A",
	}, res.Logs)

	var edgeSteps int
	for _, s := range res.Steps {
		if s.CurrentEdge != nil {
			edgeSteps++
		}
	}
	assert.Equal(t, 6, edgeSteps, "one step per consumed edge")
}

func TestFleury_Bowtie(t *testing.T) {
	g := bowtie(t)
	res, err := euler.Fleury(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "C", "A"}, res.EulerPath)
	assert.Equal(t, "Start Fleury from A", res.Steps[0].Message)
	assert.Equal(t, "Move from C to D", res.Steps[3].Message, "C-A is a bridge while C-D remains")
	assert.Equal(t, []string{"Euler path: A → B → C → D → E → C → A"}, res.Logs)
	requireEulerWalk(t, g, res.EulerPath)
}

func TestFleury_StartsAtOddVertex(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	res, err := euler.Fleury(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, res.EulerPath)
	assert.Len(t, res.TraversedEdges, 3)
}

func TestEuler_ParallelLinksAndSelfLoop(t *testing.T) {
	g := undirected(t, "A", "B", "A", "B", "B", "B")
	for name, run := range map[string]func(*core.Graph) (*trace.Result, error){
		"fleury":     euler.Fleury,
		"hierholzer": euler.Hierholzer,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := run(g)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "B", "A"}, res.EulerPath)
		})
	}
}

// TestEuler_EveryEdgeOnce runs both walkers on generated even-degree graphs.
func TestEuler_EveryEdgeOnce(t *testing.T) {
	ctors := map[string]builder.Constructor{
		"cycle-6":     builder.Cycle(6),
		"complete-5":  builder.Complete(5),
		"complete-7":  builder.Complete(7),
		"bipartite-2": builder.CompleteBipartite(2, 4),
	}
	for name, ctor := range ctors {
		g, err := builder.BuildGraph(nil, nil, ctor)
		require.NoError(t, err)
		t.Run(name, func(t *testing.T) {
			f, err := euler.Fleury(g)
			require.NoError(t, err)
			requireEulerWalk(t, g, f.EulerPath)

			h, err := euler.Hierholzer(g)
			require.NoError(t, err)
			requireEulerWalk(t, g, h.EulerPath)
			assert.Equal(t, h.EulerPath[0], h.EulerPath[len(h.EulerPath)-1], "circuit must close")
		})
	}
}

func TestEuler_Infeasible(t *testing.T) {
	k4, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	p3, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	split := undirected(t, "A", "B", "B", "C", "C", "A", "X", "Y", "Y", "Z", "Z", "X")
	arrow := core.NewGraph(core.WithDirected(true))
	require.NoError(t, arrow.AddEdge("A", "B", 1))

	cases := []struct {
		name    string
		g       *core.Graph
		fleury  error
		hierhol error
	}{
		{"four odd vertices", k4, core.ErrEulerInfeasible, core.ErrEulerInfeasible},
		{"two odd vertices", p3, nil, core.ErrEulerInfeasible},
		{"disconnected edges", split, core.ErrEulerInfeasible, core.ErrEulerInfeasible},
		{"directed", arrow, core.ErrDirection, core.ErrDirection},
		{"nil", nil, euler.ErrNilGraph, euler.ErrNilGraph},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := euler.Fleury(c.g)
			if c.fleury == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.fleury)
			}
			_, err = euler.Hierholzer(c.g)
			assert.ErrorIs(t, err, c.hierhol)
		})
	}
}

func TestEuler_IsolatedVerticesAreSkipped(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "lonely"}))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))

	res, err := euler.Hierholzer(g)
	require.NoError(t, err)
	assert.Equal(t, "A", res.EulerPath[0])
	assert.Len(t, res.EulerPath, 4)
}

func ExampleHierholzer() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}
	res, err := euler.Hierholzer(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.EulerPath)
	// Output: [1 2 3 1]
}
