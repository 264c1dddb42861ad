// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices).
//   • Node IDs are "r,c" (cfg.idFn is not used).
//   • 4-neighborhood; row-major emission: for each cell, right neighbor then down neighbor.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if rows*cols < 2 {
			return fmt.Errorf("%s: 1×1 grid has no edges: %w", methodGrid, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := gridVertexID(r, c)
				if c+1 < cols {
					g.SetEdge(here, gridVertexID(r, c+1))
				}
				if r+1 < rows {
					g.SetEdge(here, gridVertexID(r+1, c))
				}
			}
		}

		return nil
	}
}
