// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options, seed and constructor order ⇒ identical boards.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hexroute/core"
)

// Constructor applies a deterministic board mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; the partial graph is
// discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertex inserts one vertex, wrapping failures with the method tag.
func addVertex(g *core.Graph, method string, v core.Vertex) error {
	if err := g.AddVertex(v); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, v.ID, ErrConstructFailed, err)
	}
	return nil
}

// addEdge inserts one undirected edge, wrapping failures with the method tag.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}
	return nil
}
