// SPDX-License-Identifier: MIT

package dfs

// frame is one level of the explicit search stack: the vertex, its sorted
// neighbors, and the index of the next neighbor to try.
type frame struct {
	id   string
	nbrs []string
	next int
}

// clonePath returns an independent copy of p.
func clonePath(p []string) []string {
	out := make([]string, len(p))
	copy(out, p)

	return out
}
