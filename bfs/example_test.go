package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/core"
)

// ExampleBFS walks a small office network and prints the visit order and
// the narration log.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge("gw", "sw1", 1)
	_ = g.AddEdge("gw", "sw2", 1)
	_ = g.AddEdge("sw1", "pc1", 1)
	_ = g.AddEdge("sw2", "pc2", 1)

	res, err := bfs.BFS(g, "gw")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Visited)
	fmt.Println(len(res.Steps), "steps")
	// Output:
	// [gw sw1 sw2 pc1 pc2]
	// 10 steps
}
