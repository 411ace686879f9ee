// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/dijkstra"
	"github.com/katalvlaran/hexroute/settle"
)

// FindRoute returns the cheapest route from start to end under the configured
// cost model and the maximum-weight settlement subset along it.
//
// Stages:
//  1. Validate endpoints (ErrNilBoard, ErrInvalidEndpoints).
//  2. Build the edge cost for b and run dijkstra from start.
//  3. Rebuild the route (ErrUnreachable when end was never reached, or only
//     at a cost above WithMaxCost).
//  4. settle.Select over the route's vertex weights.
//
// Determinism: equal-cost routes resolve through the smallest vertex ID and
// equal-weight settlement choices favor positions nearer start, so the result
// is a pure function of the board, endpoints and options.
func FindRoute(b core.Board, start, end string, opts ...Option) (Result, error) {
	if err := validateEndpoints(b, start, end); err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cost, err := o.Cost(b)
	if err != nil {
		return Result{}, fmt.Errorf("route: FindRoute: cost model: %w", err)
	}
	dopts := []dijkstra.Option{
		dijkstra.Source(start),
		dijkstra.WithCost(cost),
		dijkstra.WithReturnPath(),
	}
	if o.MaxCost > 0 {
		dopts = append(dopts, dijkstra.WithMaxDistance(o.MaxCost))
	}
	dist, prev, err := dijkstra.Dijkstra(b, dopts...)
	if err != nil {
		return Result{}, fmt.Errorf("route: FindRoute: %w", err)
	}

	path, err := dijkstra.PathTo(prev, start, end)
	if errors.Is(err, dijkstra.ErrNoPath) {
		if o.MaxCost > 0 {
			return Result{}, fmt.Errorf("%w: %q → %q within cost %d", ErrUnreachable, start, end, o.MaxCost)
		}
		return Result{}, fmt.Errorf("%w: %q → %q", ErrUnreachable, start, end)
	}
	if err != nil {
		return Result{}, fmt.Errorf("route: FindRoute: %w", err)
	}

	weights, err := core.Weights(b, path)
	if err != nil {
		return Result{}, fmt.Errorf("route: FindRoute: %w", err)
	}
	picked := settle.Select(weights)

	return Result{
		Route:       Route(path),
		Settlements: Settlements(settle.Pick(path, picked)),
		Weight:      settle.Total(weights, picked),
		Cost:        dist[end],
	}, nil
}
