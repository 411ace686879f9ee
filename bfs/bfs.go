// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/hexroute/core"
)

// Distances returns the hop distance from startID to every vertex reachable
// from it within the configured depth. Other vertices are absent from the map.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors (wrapped board failure) or the context error.
func Distances(b core.Board, startID string, opts ...Option) (map[string]int, error) {
	if b == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !b.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	depth := map[string]int{startID: 0}
	queue := []string{startID}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		next := depth[id] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}

		nbrs, err := b.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := depth[nbr]; seen {
				continue
			}
			depth[nbr] = next
			queue = append(queue, nbr)
		}
	}

	return depth, nil
}
