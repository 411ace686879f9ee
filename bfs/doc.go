// SPDX-License-Identifier: MIT

// Package bfs computes hop-distance tables over a core.Board.
//
// Distances(b, id) walks outward from id in non-decreasing hop order and
// records the distance of every vertex it reaches. The route enumerator
// builds one table from the end vertex per search and prunes any branch that
// steps into a vertex missing from it.
//
// Options: WithContext (cancellation is checked once per dequeued vertex)
// and WithMaxDepth (vertices beyond d hops are left out).
//
// Complexity: time O(V + E), memory O(V).
package bfs
