// SPDX-License-Identifier: MIT

// Package dfs implements simple-path enumeration on core.Board with an
// explicit stack, caps, pruning and cancellation.
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/hexroute/core"
)

// pathWalker encapsulates state during a simple-path search.
type pathWalker struct {
	board  core.Board      // underlying board
	opts   Options         // search options
	end    string          // target vertex
	onPath map[string]bool // vertices on the current path, prefix included
	res    *PathsResult    // result collector
}

// SimplePaths enumerates every simple path from start to end in discovery
// order. A path never continues through end. When start == end the single
// path [start] is reported.
//
// On any error the partially filled result is returned alongside it.
func SimplePaths(b core.Board, start, end string, opts ...Option) (*PathsResult, error) {
	// 1. Validate input
	if b == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !b.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !b.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	// 2. Seed walker state with the prefix
	w := &pathWalker{
		board:  b,
		opts:   o,
		end:    end,
		onPath: make(map[string]bool, len(o.Prefix)+1),
		res:    &PathsResult{},
	}
	for _, id := range o.Prefix {
		w.onPath[id] = true
	}

	return w.res, w.run(start)
}

// run drives the explicit-stack search rooted at start.
func (w *pathWalker) run(start string) error {
	path := append(clonePath(w.opts.Prefix), start)
	if start == w.end {
		return w.emit(path)
	}

	nbrs, err := w.board.NeighborIDs(start)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", start, err)
	}
	w.onPath[start] = true

	stack := arraystack.New()
	stack.Push(&frame{id: start, nbrs: nbrs})

	for !stack.Empty() {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Backtrack once every neighbor of the top frame was tried
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.next == len(f.nbrs) {
			stack.Pop()
			delete(w.onPath, f.id)
			path = path[:len(path)-1]
			continue
		}
		next := f.nbrs[f.next]
		f.next++

		// 3. Simple-path, pruning and depth rules
		if w.onPath[next] {
			continue
		}
		if w.opts.Prune != nil && w.opts.Prune(path, next) {
			continue
		}
		if w.opts.MaxDepth > 0 && len(path) > w.opts.MaxDepth {
			w.res.Truncated = true
			continue
		}

		// 4. Expansion budget
		w.res.Expansions++
		if w.opts.MaxExpansions > 0 && w.res.Expansions > w.opts.MaxExpansions {
			return fmt.Errorf("%w: more than %d expansions", ErrSearchExhausted, w.opts.MaxExpansions)
		}

		// 5. Reaching end completes a path; it is never extended further
		if next == w.end {
			if err = w.emit(append(clonePath(path), next)); err != nil {
				return err
			}
			continue
		}

		nbrs, err = w.board.NeighborIDs(next)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", next, err)
		}
		w.onPath[next] = true
		path = append(path, next)
		stack.Push(&frame{id: next, nbrs: nbrs})
	}

	return nil
}

// emit records a complete path, enforcing MaxPaths.
func (w *pathWalker) emit(p []string) error {
	w.res.Found++
	if w.opts.MaxPaths > 0 && w.res.Found > w.opts.MaxPaths {
		return fmt.Errorf("%w: more than %d paths", ErrSearchExhausted, w.opts.MaxPaths)
	}
	if w.opts.OnPath != nil {
		return w.opts.OnPath(p)
	}
	w.res.Paths = append(w.res.Paths, p)

	return nil
}
