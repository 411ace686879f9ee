// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1) at
//     positions (i*spacing, 0), with roll tables from cfg.rollFn.
//   - Emits edges (i-1)—i for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hexroute/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			v := core.Vertex{
				ID:    id,
				Pos:   core.Point{X: float64(i) * cfg.spacing},
				Rolls: cfg.rollsFor(i, id),
			}
			if err := addVertex(g, methodPath, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
