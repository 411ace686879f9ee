// SPDX-License-Identifier: MIT

// Package core provides the board graph every hexroute algorithm runs on:
// buildable vertices with a stable string identity, a 2D position used only by
// renderers, undirected adjacency, and a roll table mapping each dice total
// (2..12) to the resource types the vertex yields when that total is rolled.
//
// The Graph B = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted adjacency (settlements connect both ways).
//   - No self-loops, no parallel edges; AddEdge of an existing pair is a no-op.
//   - Roll tables are validated on insertion (totals 2..12, never 7) and copied,
//     so a vertex is immutable once it is in the graph.
//   - One sync.RWMutex guards the whole catalog; boards are built once and then
//     shared read-only across goroutines.
//
// Determinism:
//
//	Vertices() and NeighborIDs() return lexicographically sorted IDs, so every
//	algorithm that iterates them (Dijkstra tie-breaks, DFS discovery order,
//	calibration sampling) is reproducible for a fixed board.
//
// Query surface:
//
//	type Board interface {
//	    Vertices() []string
//	    HasVertex(id string) bool
//	    NeighborIDs(id string) ([]string, error)
//	    RollTable(id string) (RollTable, error)
//	}
//
// Algorithms accept a Board rather than *Graph, so an external board model can
// be plugged in without copying it into a Graph.
//
// Resource universe:
//
//	Wood < Brick < Sheep < Wheat < Ore   (ResourceCount == 5)
//
// Weight(RollTable) counts the distinct resource types a vertex can produce and
// is the settlement weight used by the selection DP.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrDuplicateVertex  - AddVertex with an ID already present.
//	ErrLoopNotAllowed   - AddEdge(v, v).
//	ErrBadRoll          - roll total outside 2..12, or 7.
//	ErrUnknownResource  - resource name or value outside the universe.
package core
