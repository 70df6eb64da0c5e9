// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_grid.go: Grid(rows, cols): the 4-neighbour lattice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const methodGrid = "Grid"

// GridID returns the vertex ID of cell (r, c): "r,c".
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor for a rows×cols lattice. Vertices are added in
// row-major order; each cell links right then down.
// Errors: ErrTooFewVertices if rows < 1 or cols < 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertex(g, GridID(r, c)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, GridID(r, c), GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, GridID(r, c), GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
