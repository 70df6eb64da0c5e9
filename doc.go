// Package graphtrace runs classic graph algorithms and records every step
// they take, so a client can replay a run frame by frame.
//
// Every algorithm returns a *trace.Result: an ordered list of human-readable
// log lines, an ordered list of steps (each a message plus a snapshot of the
// algorithm's state at that moment) and the named outputs of the run.
//
// Packages:
//
//	core/          Graph, Node, Link, ordered adjacency and sentinel errors
//	trace/         Step, Snapshot, Recorder and Result
//	bfs/, dfs/     traversals
//	dijkstra/      shortest paths, non-negative weights
//	bellmanford/   shortest paths with negative-cycle detection
//	prim_kruskal/  minimum spanning trees
//	flow/          maximum flow (Ford-Fulkerson, BFS augmenting paths)
//	euler/         Fleury and Hierholzer
//	bipartite/     two-colouring
//	converters/    adjacency matrix, edge list and adjacency list
//	builder/       deterministic fixture graphs
//	engine/        run any algorithm by name with logging, spans and metrics
//	cmd/graphtrace CLI and HTTP server
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "D", 1)
//	_ = g.AddEdge("D", "C", 1)
//	_ = g.AddEdge("C", "A", 1)
//	res, _ := bfs.BFS(g, "A")
//	fmt.Println(res.Visited) // [A B C D]
package graphtrace
