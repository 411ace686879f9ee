// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-route algorithm on a board
// graph with a pluggable, non-negative, deterministic edge cost.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap ordered by (distance, vertex ID) so that equal-cost
//     frontiers are always expanded in lexicographic ID order.
//   - Neighbors are relaxed in ascending ID order and only strict improvements are
//     recorded, so the predecessor of every vertex is a pure function of the board,
//     the source and the cost function.
//
// Edge cost:
//
//   - The default cost is one per hop (UniformCost).
//   - WithCost(fn) installs any CostFunc; fn(u, v) is the cost of stepping from u
//     into v. Costs must be non-negative (ErrNegativeWeight otherwise) and must not
//     depend on call order.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil board was passed.
//   - ErrVertexNotFound:  the source vertex does not exist on the board.
//   - ErrNegativeWeight:  the cost function produced a negative cost.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value (panics at option time).
//   - ErrNoPath:          PathTo found no predecessor chain to the target.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(board,
//	    dijkstra.Source("v0"),
//	    dijkstra.WithReturnPath(),
//	)
//	route, err := dijkstra.PathTo(prev, "v0", "v3")
package dijkstra
