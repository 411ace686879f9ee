// SPDX-License-Identifier: MIT
// Package core defines the board Graph, Vertex and Board types, sentinel errors
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core board operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadRoll indicates a roll-table key outside 2..12, or the robber total 7.
	ErrBadRoll = errors.New("core: roll total must be in 2..12 and not 7")

	// ErrUnknownResource indicates a resource outside the fixed universe.
	ErrUnknownResource = errors.New("core: unknown resource")
)

// Point is a 2D position. It exists for renderers only; no algorithm reads it.
type Point struct {
	X float64
	Y float64
}

// Vertex is one buildable spot on the board.
//
// ID uniquely identifies this Vertex within its Graph.
// Pos is the rendering position.
// Rolls maps a dice total to the resources produced when that total is rolled.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Pos is the rendering position; algorithms ignore it.
	Pos Point

	// Rolls is the roll table. Missing totals produce nothing.
	Rolls RollTable
}

// Board is the read-only query surface consumed by the route, enumeration and
// simulation packages. *Graph implements it.
type Board interface {
	// Vertices returns all vertex IDs sorted ascending.
	Vertices() []string

	// HasVertex reports whether id is a member of the board.
	HasVertex(id string) bool

	// NeighborIDs returns the IDs adjacent to id, unique and sorted ascending.
	NeighborIDs(id string) ([]string, error)

	// RollTable returns the roll table of id. Callers must not mutate it.
	RollTable(id string) (RollTable, error)
}

// Graph is the in-memory board graph.
//
// mu guards vertices and adjacency. Adjacency is mirrored: if v is in adj[u]
// then u is in adj[v].
type Graph struct {
	mu sync.RWMutex

	vertices map[string]*Vertex            // vertex ID → Vertex
	adj      map[string]map[string]struct{} // vertex ID → neighbor set
	edges    int                            // undirected edge count
}

// compile-time check
var _ Board = (*Graph)(nil)

// NewGraph creates an empty board graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string]map[string]struct{}),
	}
}
