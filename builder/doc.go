// Package builder provides deterministic graph fixtures for tests, examples
// and the `graphtrace gen` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  a function that adds one topology to a core.Graph.
//     – BuildGraph:   creates the graph and applies constructors in order.
//     – Named:        resolves a topology name ("cycle", "grid", …) to a Constructor.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), OneBasedIDFn
//     ("1","2",…), SymbolIDFn ("A","B",…), ExcelColumnIDFn ("A",…,"AA",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order yield
//     identical graphs, including node positions (core.GridPosition).
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Directed graphs receive both arcs of every generated edge.
package builder
