// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit. cfg.rollFn still receives
//     the row-major index.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits Right then Bottom where the neighbour exists.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hexroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				v := core.Vertex{
					ID:    id,
					Pos:   core.Point{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing},
					Rolls: cfg.rollsFor(r*cols+c, id),
				}
				if err := addVertex(g, methodGrid, v); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
