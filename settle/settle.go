// SPDX-License-Identifier: MIT

// Package settle selects settlement spots along a fixed route.
//
// A route is a line v0–v1–…–v(n-1). Settlements may not sit on route-adjacent
// positions, so a selection is an independent set of that line. Both selectors
// are small dynamic programs over the line, run once the route is fixed.
//
//	Select(w)          – maximum total weight, any size (two states: take / skip).
//	SelectExactly(w,k) – maximum total weight among selections of exactly k members.
//
// Ties between equal-weight selections are broken in favor of positions closer
// to the start: the DP runs from the end of the line backwards and, at each
// position, prefers "take" when it does not lose weight. The result is the
// lexicographically smallest index list among the optimal selections.
//
// Complexity:
//
//	Select:        O(n) time, O(n) space.
//	SelectExactly: O(n·k) time, O(n·k) space.
package settle

import "math"

// neg marks an unreachable DP state.
const neg = math.MinInt / 4

// Select returns the route positions of a maximum-weight independent set of the
// line with the given vertex weights, ascending.
//
// Zero-weight positions are never taken: they add nothing to the total and a
// settlement there produces nothing. Negative weights are treated as zero.
func Select(weights []int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}

	// best[i] = optimal weight of the suffix starting at i, with i free to take.
	best := make([]int, n+2)
	take := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		w := max(weights[i], 0)
		withI := w + best[i+2]
		withoutI := best[i+1]
		if w > 0 && withI >= withoutI {
			best[i] = withI
			take[i] = true
		} else {
			best[i] = withoutI
		}
	}

	var out []int
	for i := 0; i < n; {
		if take[i] {
			out = append(out, i)
			i += 2
			continue
		}
		i++
	}

	return out
}

// SelectExactly returns the positions of a maximum-weight independent set of
// exactly k members, ascending, and ok=false when no such set exists
// (k > ceil(n/2) or k < 0). k == 0 yields an empty, successful selection.
func SelectExactly(weights []int, k int) (positions []int, ok bool) {
	n := len(weights)
	if k < 0 || k > MaxSettlements(n) {
		return nil, false
	}
	if k == 0 {
		return []int{}, true
	}

	// dp[i][j] = best weight choosing exactly j members from positions i..n-1,
	// position i free. Rows n and n+1 are the empty suffix.
	dp := make([][]int, n+2)
	for i := range dp {
		dp[i] = make([]int, k+1)
		for j := 1; j <= k; j++ {
			dp[i][j] = neg
		}
	}
	for i := n - 1; i >= 0; i-- {
		w := max(weights[i], 0)
		for j := 1; j <= k; j++ {
			skip := dp[i+1][j]
			takeV := neg
			if dp[i+2][j-1] > neg {
				takeV = w + dp[i+2][j-1]
			}
			dp[i][j] = max(skip, takeV)
		}
	}
	if dp[0][k] <= neg {
		return nil, false
	}

	out := make([]int, 0, k)
	for i, j := 0, k; j > 0 && i < n; {
		w := max(weights[i], 0)
		if dp[i+2][j-1] > neg && w+dp[i+2][j-1] == dp[i][j] {
			out = append(out, i)
			i += 2
			j--
			continue
		}
		i++
	}

	return out, true
}

// MaxSettlements is the largest independent set a line of n positions can hold.
func MaxSettlements(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}

// MinRouteLen is the shortest line that can hold k settlements.
func MinRouteLen(k int) int {
	if k <= 0 {
		return 0
	}
	return 2*k - 1
}

// Independent reports whether positions (ascending) contain no two neighbors.
func Independent(positions []int) bool {
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] < 2 {
			return false
		}
	}
	return true
}

// Total sums the weights at the given positions.
func Total(weights []int, positions []int) int {
	s := 0
	for _, p := range positions {
		s += max(weights[p], 0)
	}
	return s
}

// Pick maps positions back to the IDs of the route.
func Pick(route []string, positions []int) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = route[p]
	}
	return out
}

// SymmetricDifferenceRatio returns |A Δ B| / |A| over the distinct IDs of a
// and b: 0 for identical sets, 2 for disjoint sets of equal size. When a is
// empty it returns 0 if b is empty too and |B| otherwise.
func SymmetricDifferenceRatio(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	if len(setA) == 0 {
		return float64(len(setB))
	}

	diff := 0
	for id := range setA {
		if _, ok := setB[id]; !ok {
			diff++
		}
	}
	for id := range setB {
		if _, ok := setA[id]; !ok {
			diff++
		}
	}

	return float64(diff) / float64(len(setA))
}
