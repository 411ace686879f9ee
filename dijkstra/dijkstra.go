// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-route algorithm on board graphs.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The heap is ordered by (dist, id); equal-cost ties therefore pop in ID order.
//   - Neighbors come sorted from core.Board.NeighborIDs and only strict improvements
//     replace a predecessor, which fixes the tie-break rule for routes.
//   - Costs are validated as they are produced; a negative cost aborts the run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hexroute/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices on board b.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest route to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or a negative cost is produced.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. b must be non-nil (ErrNilGraph).
//  3. b must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(b core.Board, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate board is non-nil
	if b == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists on the board
	if !b.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := b.Vertices()
	V := len(vertices)

	r := &runner{
		b:       b,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route source → … → target from a predecessor map.
//
// Errors:
//   - ErrNoPath if target was never reached (or prev is nil).
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == target {
		return []string{source}, nil
	}
	if prev == nil || prev[target] == "" {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, source, target)
	}

	path := []string{target}
	seen := map[string]bool{target: true}
	for cur := target; cur != source; {
		p := prev[cur]
		if p == "" || seen[p] {
			return nil, fmt.Errorf("%w: broken chain at %s", ErrNoPath, cur)
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	b       core.Board        // The input board; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest route.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = ∞ for every vertex and pushes Source with distance 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		r.visited[v] = false
		r.prev[v] = ""
	}

	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		id:   r.options.Source,
		dist: 0,
	})
}

// process repeatedly extracts the vertex with the minimum (dist, id) and relaxes
// its neighbors, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	var u string
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}

		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of u and records strict improvements.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.b.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var w, newDist int64
	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}

		w = r.options.Cost(u, v)
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		// Saturate instead of overflowing on pathological costs.
		if r.dist[u] > math.MaxInt64-w {
			continue
		}
		newDist = r.dist[u] + w

		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: the first predecessor to reach a distance keeps it.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		heap.Push(&r.pq, &nodeItem{
			id:   v,
			dist: newDist,
		})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
