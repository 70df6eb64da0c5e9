// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2): K_{n1,n2}.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphtrace/core"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor for K_{n1,n2}. Left vertices are
// leftPrefix+"0".., right vertices rightPrefix+"0".. (default "L0", "R0").
// All left vertices are added before the right ones.
// Errors: ErrTooFewVertices if n1 < 1 or n2 < 1.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d: %w", methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := addVertex(g, left[i]); err != nil {
				return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := addVertex(g, right[j]); err != nil {
				return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, u, v); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
