// Package builder_test checks topology counts, IDs, layout and determinism
// of every Constructor.
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
)

// edgeKey identifies a stored link by its endpoints.
type edgeKey struct{ U, V string }

func linkWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, l := range g.Links() {
		m[edgeKey{l.Source, l.Target}] = l.Weight
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := linkWeights(g)
				for i := 0; i < 5; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					if w, ok := edges[edgeKey{from, to}]; !ok || w != builder.DefaultEdgeWeight {
						t.Errorf("Cycle: missing or wrong weight for %s-%s: got %v, ok=%v", from, to, w, ok)
					}
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				adj := g.Adjacency()
				if adj.Degree("0") != 1 || adj.Degree("3") != 1 || adj.Degree("1") != 2 {
					t.Errorf("Path: unexpected degrees %d %d %d", adj.Degree("0"), adj.Degree("1"), adj.Degree("3"))
				}
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := g.NodeIDs()[0]; got != builder.CenterID {
					t.Errorf("Star: first vertex = %q, want %q", got, builder.CenterID)
				}
				if d := g.Adjacency().Degree(builder.CenterID); d != 3 {
					t.Errorf("Star: hub degree = %d, want 3", d)
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if d := g.Adjacency().Degree(builder.CenterID); d != 4 {
					t.Errorf("Wheel: hub degree = %d, want 4", d)
				}
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				want := []string{"L0", "L1", "R0", "R1", "R2"}
				for i, id := range g.NodeIDs() {
					if id != want[i] {
						t.Fatalf("CompleteBipartite: ids = %v, want %v", g.NodeIDs(), want)
					}
				}
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasNode(builder.GridID(1, 2)) {
					t.Errorf("Grid: missing corner %q", builder.GridID(1, 2))
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.NodeCount(); got != tc.wantV {
				t.Errorf("vertices = %d, want %d", got, tc.wantV)
			}
			if got := g.LinkCount(); got != tc.wantE {
				t.Errorf("links = %d, want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Cycle(2)":               builder.Cycle(2),
		"Path(1)":                builder.Path(1),
		"Star(1)":                builder.Star(1),
		"Wheel(3)":               builder.Wheel(3),
		"Complete(0)":            builder.Complete(0),
		"CompleteBipartite(0,1)": builder.CompleteBipartite(0, 1),
		"Grid(1,0)":              builder.Grid(1, 0),
	} {
		if _, err := builder.BuildGraph(nil, nil, ctor); !errors.Is(err, builder.ErrTooFewVertices) {
			t.Errorf("%s: err = %v, want ErrTooFewVertices", name, err)
		}
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("err = %v, want ErrConstructFailed", err)
	}
}

func TestBuildGraph_DirectedMirrorsArcs(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	edges := linkWeights(g)
	for _, k := range []edgeKey{{"0", "1"}, {"1", "0"}, {"1", "2"}, {"2", "1"}} {
		if _, ok := edges[k]; !ok {
			t.Errorf("missing arc %s→%s", k.U, k.V)
		}
	}
}

func TestBuildGraph_LayoutAndIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(6))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	n, ok := g.Node("F")
	if !ok {
		t.Fatalf("vertex F missing: %v", g.NodeIDs())
	}
	if n.X != 100 || n.Y != 250 {
		t.Errorf("F at (%v,%v), want (100,250)", n.X, n.Y)
	}
}

func TestBuildGraph_SeedIsDeterministic(t *testing.T) {
	build := func() map[edgeKey]float64 {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithUniformIntWeight(1, 20),
		}, builder.Complete(6))
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}
		return linkWeights(g)
	}
	a, b := build(), build()
	for k, w := range a {
		if b[k] != w {
			t.Fatalf("edge %v: %v != %v", k, w, b[k])
		}
		if w < 1 || w > 20 || w != float64(int(w)) {
			t.Fatalf("edge %v: weight %v outside integer range [1,20]", k, w)
		}
	}
}

func TestNamed(t *testing.T) {
	ctor, err := builder.Named("GRID", 3)
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	g, err := builder.BuildGraph(nil, nil, ctor)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.NodeCount() != 9 || g.LinkCount() != 12 {
		t.Errorf("grid 3x3: %d nodes, %d links", g.NodeCount(), g.LinkCount())
	}
	if _, err = builder.Named("hexagram", 3); !errors.Is(err, builder.ErrUnknownTopology) {
		t.Errorf("err = %v, want ErrUnknownTopology", err)
	}
}
