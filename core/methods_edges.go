// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Undirected adjacency lifecycle & neighborhood queries.
//
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v in both directions.
//
// Implementation:
//   - Stage 1: Reject empty IDs and self-loops.
//   - Stage 2: Under the write lock, require both endpoints to exist.
//   - Stage 3: Mirror the pair into both adjacency buckets; an existing pair is a no-op.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, u)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}
	if _, ok := g.adj[u][v]; ok {
		return nil
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// NeighborIDs returns the vertices adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	bucket, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(bucket))
	for nid := range bucket {
		out = append(out, nid)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Adjacent reports whether u and v are neighbors on any Board.
// A lookup failure is reported as not adjacent.
func Adjacent(b Board, u, v string) bool {
	nbs, err := b.NeighborIDs(u)
	if err != nil {
		return false
	}
	i := sort.SearchStrings(nbs, v)

	return i < len(nbs) && nbs[i] == v
}

// Weights returns core.Weight of every vertex in ids, in order.
//
// Errors:
//   - Any RollTable lookup error, wrapped with the offending ID.
func Weights(b Board, ids []string) ([]int, error) {
	out := make([]int, len(ids))
	for i, id := range ids {
		t, err := b.RollTable(id)
		if err != nil {
			return nil, fmt.Errorf("core: Weights(%s): %w", id, err)
		}
		out[i] = Weight(t)
	}

	return out, nil
}
