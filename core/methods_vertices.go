// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency buckets are protected by mu.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts v into the graph.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID) and roll table (ErrBadRoll, ErrUnknownResource).
//   - Stage 2: Under the write lock, reject duplicates (ErrDuplicateVertex).
//   - Stage 3: Store a private copy of v and bootstrap its adjacency bucket.
//
// Behavior highlights:
//   - The stored roll table is a deep copy; later mutation of v.Rolls by the
//     caller does not leak into the board.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadRoll, ErrUnknownResource, ErrDuplicateVertex.
//
// Complexity:
//   - Time O(|Rolls|), Space O(|Rolls|).
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	if err := v.Rolls.Validate(); err != nil {
		return fmt.Errorf("core: AddVertex(%s): %w", v.ID, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
	}

	stored := &Vertex{ID: v.ID, Pos: v.Pos, Rolls: v.Rolls.Clone()}
	if stored.Rolls == nil {
		stored.Rolls = RollTable{}
	}
	g.vertices[v.ID] = stored
	g.adj[v.ID] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether id exists. Empty IDs are never present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(|Rolls|) for the defensive copy.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return Vertex{ID: v.ID, Pos: v.Pos, Rolls: v.Rolls.Clone()}, nil
}

// RollTable returns the stored roll table of id without copying it.
// The result is shared with the graph and must be treated as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(1).
func (g *Graph) RollTable(id string) (RollTable, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return v.Rolls, nil
}

// Position returns the rendering position of id.
func (g *Graph) Position(id string) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return v.Pos, nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Determinism:
//   - Stable lexicographic order; every sampler and traversal relies on it.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
