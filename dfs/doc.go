// SPDX-License-Identifier: MIT

// Package dfs enumerates simple paths between two vertices of a core.Board
// with an explicit-stack depth-first search.
//
// What:
//
//   - SimplePaths(b, start, end, opts...): every path start→end that repeats no
//     vertex, in discovery order. Neighbors are expanded in ascending ID order,
//     so discovery order is lexicographic over the path sequence.
//   - The search frontier lives on a heap-allocated stack (gods arraystack),
//     never on the goroutine stack, so long boards cannot overflow recursion.
//
// Controls:
//
//   - WithContext(ctx)        cancellation; checked once per expansion.
//   - WithMaxDepth(d)         paths may hold at most d edges. A branch cut by the
//     limit marks the result Truncated.
//   - WithMaxPaths(n)         more than n complete paths → ErrSearchExhausted.
//   - WithMaxExpansions(n)    more than n vertex expansions → ErrSearchExhausted.
//   - WithPrune(fn)           fn(path, next) == true abandons the branch through next.
//   - WithOnPath(fn)          stream paths to fn instead of collecting them.
//   - WithPrefix(ids...)      treat ids as already walked before start; they are
//     part of every reported path and can never be revisited. Used to fan out
//     one search per first move.
//
// Errors:
//
//   - ErrGraphNil             board is nil
//   - ErrStartVertexNotFound  start not on the board
//   - ErrEndVertexNotFound    end not on the board
//   - ErrSearchExhausted      a path or expansion cap was hit
//   - context errors and OnPath errors are returned unchanged
//
// Complexity:
//
//	Exponential in the worst case (the number of simple paths); O(V) memory
//	besides the reported paths.
package dfs
