// SPDX-License-Identifier: MIT

// Package route recommends settlement routes on a board and enumerates the
// structurally equivalent alternatives.
//
// Two operations:
//
//	FindRoute(b, start, end, opts...)        – RouteFinder
//	FindAllRoutes(b, start, end, k, opts...) – RouteEnumerator
//
// FindRoute runs dijkstra with a deterministic, non-negative edge cost and then
// chooses settlements on the resulting line with settle.Select. The default
// cost, ResourceCost(1.0), makes entering a vertex cheaper the more distinct
// resource types it produces, so the shortest route bends toward rich spots.
// The coefficient of that discount is the value tuned by package calibrate.
// WithMaxCost rejects recommendations costlier than a cap.
//
// FindAllRoutes enumerates every simple route between the same endpoints
// (dfs.SimplePaths) and keeps those whose vertices admit exactly k
// non-adjacent settlements (settle.SelectExactly). Routes come back in
// discovery order: neighbors ascending, so the order is lexicographic over the
// route sequence. WithParallel fans the search out per first move without
// changing that order.
//
// Errors:
//
//	ErrNilBoard          – board is nil.
//	ErrInvalidEndpoints  – start == end, or either is not on the board.
//	ErrUnreachable       – FindRoute found no connecting route within the cost cap.
//	ErrSearchExhausted   – an enumeration cap was hit; partial output is discarded.
//	context errors       – returned unchanged on cancellation.
package route
