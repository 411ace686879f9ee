// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexroute/bfs"
	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/dfs"
	"github.com/katalvlaran/hexroute/settle"
)

// FindAllRoutes enumerates every simple route from start to end whose vertices
// admit exactly k non-adjacent settlements. For each kept route the
// maximum-weight such subset is returned at the same index.
//
// k <= 0 yields empty lists. So does a board region too small to hold a
// route of settle.MinRouteLen(k) vertices, or an end unreachable from start.
//
// Pruning: a branch is abandoned when end cannot be reached from its head.
// With WithMaxDepth(d) the hop table only holds vertices within d hops of end;
// nothing farther can lie on a route of at most d edges, so those steps are
// pruned rather than reported as cut. Before searching, the component of end must be able to hold a route of
// 2k-1 vertices; a branch's length plus its unvisited vertices never exceeds
// that component's size.
//
// Caps (WithMaxRoutes, WithMaxDepth, WithMaxExpansions) fail the call with
// ErrSearchExhausted and discard partial output. Cancellation returns the
// context error.
func FindAllRoutes(b core.Board, start, end string, k int, opts ...Option) ([]Route, []Settlements, error) {
	if err := validateEndpoints(b, start, end); err != nil {
		return nil, nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if k <= 0 {
		return []Route{}, []Settlements{}, nil
	}

	e, err := newEnumerator(b, end, k, o)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := e.hops[start]; !ok {
		if o.MaxDepth > 0 {
			if err = e.beyondDepth(start); err != nil {
				return nil, nil, err
			}
		}
		return []Route{}, []Settlements{}, nil
	}
	if len(e.hops) < settle.MinRouteLen(k) {
		return []Route{}, []Settlements{}, nil
	}

	if o.Parallel > 1 {
		return e.parallel(start)
	}
	return e.sequential(start)
}

// enumerator holds the per-call search state shared by every branch.
type enumerator struct {
	board   core.Board
	end     string
	k       int
	opts    Options
	hops    map[string]int // hop distance to end; absent when unreachable
	weights map[string]int
}

func newEnumerator(b core.Board, end string, k int, o Options) (*enumerator, error) {
	hops, err := bfs.Distances(b, end, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, fmt.Errorf("route: FindAllRoutes: %w", err)
	}
	ids := b.Vertices()
	ws, err := core.Weights(b, ids)
	if err != nil {
		return nil, fmt.Errorf("route: FindAllRoutes: %w", err)
	}
	weights := make(map[string]int, len(ids))
	for i, id := range ids {
		weights[id] = ws[i]
	}

	return &enumerator{board: b, end: end, k: k, opts: o, hops: hops, weights: weights}, nil
}

// beyondDepth reports ErrSearchExhausted when start reaches end only through
// routes longer than MaxDepth; nil when start cannot reach end at all.
func (e *enumerator) beyondDepth(start string) error {
	full, err := bfs.Distances(e.board, e.end, bfs.WithContext(e.opts.Ctx))
	if err != nil {
		return e.wrap(err)
	}
	if _, ok := full[start]; ok {
		return e.depthErr()
	}
	return nil
}

// prune rejects a step into a vertex that cannot reach end.
func (e *enumerator) prune(_ []string, next string) bool {
	_, ok := e.hops[next]
	return !ok
}

// branch collects the kept routes of one search.
type branch struct {
	routes []Route
	sets   []Settlements
}

// keep is the dfs.OnPath callback: it retains p when an exactly-k selection exists.
func (e *enumerator) keep(dst *branch) func([]string) error {
	return func(p []string) error {
		ws := make([]int, len(p))
		for i, id := range p {
			ws[i] = e.weights[id]
		}
		picked, ok := settle.SelectExactly(ws, e.k)
		if !ok {
			return nil
		}
		dst.routes = append(dst.routes, Route(p))
		dst.sets = append(dst.sets, Settlements(settle.Pick(p, picked)))

		return nil
	}
}

// dfsOptions maps route caps onto dfs options.
func (e *enumerator) dfsOptions(ctx context.Context, dst *branch, prefix ...string) []dfs.Option {
	opts := []dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithMaxDepth(e.opts.MaxDepth),
		dfs.WithMaxPaths(e.opts.MaxRoutes),
		dfs.WithMaxExpansions(e.opts.MaxExpansions),
		dfs.WithPrune(e.prune),
		dfs.WithOnPath(e.keep(dst)),
	}
	if len(prefix) > 0 {
		opts = append(opts, dfs.WithPrefix(prefix...))
	}

	return opts
}

func (e *enumerator) sequential(start string) ([]Route, []Settlements, error) {
	var out branch
	res, err := dfs.SimplePaths(e.board, start, e.end, e.dfsOptions(e.opts.Ctx, &out)...)
	if err != nil {
		return nil, nil, e.wrap(err)
	}
	if res.Truncated {
		return nil, nil, e.depthErr()
	}

	return out.finish()
}

// parallel runs one dfs per first move of start. Branches are merged in
// ascending first-move order, which is the sequential discovery order. Each
// branch root counts as one expansion, as it does in the sequential walk.
func (e *enumerator) parallel(start string) ([]Route, []Settlements, error) {
	first, err := e.board.NeighborIDs(start)
	if err != nil {
		return nil, nil, fmt.Errorf("route: FindAllRoutes: %w", err)
	}
	root := []string{start}
	moves := make([]string, 0, len(first))
	for _, n := range first {
		if !e.prune(root, n) {
			moves = append(moves, n)
		}
	}

	outs := make([]branch, len(moves))
	results := make([]*dfs.PathsResult, len(moves))
	g, ctx := errgroup.WithContext(e.opts.Ctx)
	g.SetLimit(e.opts.Parallel)
	for i, n := range moves {
		g.Go(func() error {
			res, err := dfs.SimplePaths(e.board, n, e.end, e.dfsOptions(ctx, &outs[i], start)...)
			results[i] = res
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, e.wrap(err)
	}
	if err = e.opts.Ctx.Err(); err != nil {
		return nil, nil, err
	}

	var merged branch
	found, expansions := 0, 0
	for i, res := range results {
		found += res.Found
		expansions += res.Expansions + 1
		if res.Truncated {
			return nil, nil, e.depthErr()
		}
		merged.routes = append(merged.routes, outs[i].routes...)
		merged.sets = append(merged.sets, outs[i].sets...)
	}
	if e.opts.MaxExpansions > 0 && expansions > e.opts.MaxExpansions {
		return nil, nil, fmt.Errorf("%w: more than %d expansions", ErrSearchExhausted, e.opts.MaxExpansions)
	}
	if e.opts.MaxRoutes > 0 && found > e.opts.MaxRoutes {
		return nil, nil, fmt.Errorf("%w: more than %d routes", ErrSearchExhausted, e.opts.MaxRoutes)
	}

	return merged.finish()
}

func (b *branch) finish() ([]Route, []Settlements, error) {
	if b.routes == nil {
		return []Route{}, []Settlements{}, nil
	}
	return b.routes, b.sets, nil
}

func (e *enumerator) depthErr() error {
	return fmt.Errorf("%w: routes longer than %d edges were cut", ErrSearchExhausted, e.opts.MaxDepth)
}

// wrap adds call context to search errors other than cancellation.
func (e *enumerator) wrap(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("route: FindAllRoutes: %w", err)
}
