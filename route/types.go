// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/dfs"
	"github.com/katalvlaran/hexroute/dijkstra"
)

// Sentinel errors.
var (
	// ErrNilBoard is returned when a nil board is passed.
	ErrNilBoard = errors.New("route: board is nil")

	// ErrInvalidEndpoints is returned when start == end or either endpoint is
	// not on the board.
	ErrInvalidEndpoints = errors.New("route: invalid endpoints")

	// ErrUnreachable is returned when no route connects start and end.
	ErrUnreachable = errors.New("route: end unreachable from start")

	// ErrSearchExhausted is returned when an enumeration cap stops the search.
	ErrSearchExhausted = dfs.ErrSearchExhausted
)

// CostUnit is the cost of one hop before any resource discount.
const CostUnit = 1000

// Route is an ordered list of vertex IDs, start and end inclusive.
// Consecutive IDs are adjacent; no ID repeats.
type Route []string

// Settlements is a subset of a Route's vertices, in route order, with no two
// members adjacent in the route.
type Settlements []string

// Result is the outcome of FindRoute.
type Result struct {
	Route       Route
	Settlements Settlements
	Weight      int   // summed core.Weight of the settlements
	Cost        int64 // total edge cost of Route
}

// CostModel builds the edge cost for one board.
type CostModel func(b core.Board) (dijkstra.CostFunc, error)

// UniformCost charges CostUnit per hop; the shortest route is the one with
// the fewest hops.
func UniformCost(core.Board) (dijkstra.CostFunc, error) {
	return func(string, string) int64 { return CostUnit }, nil
}

// ResourceCost charges for entering v
//
//	CostUnit + round(CostUnit * coef * (R - w(v)) / R)
//
// where R = core.ResourceCount and w = core.Weight. coef == 0 is UniformCost.
// Panics if coef is negative, NaN or infinite.
func ResourceCost(coef float64) CostModel {
	if coef < 0 || math.IsNaN(coef) || math.IsInf(coef, 0) {
		panic(fmt.Sprintf("route: ResourceCost(%v): coefficient must be finite and non-negative", coef))
	}
	return func(b core.Board) (dijkstra.CostFunc, error) {
		ids := b.Vertices()
		ws, err := core.Weights(b, ids)
		if err != nil {
			return nil, err
		}
		enter := make(map[string]int64, len(ids))
		for i, id := range ids {
			miss := float64(core.ResourceCount-ws[i]) / core.ResourceCount
			enter[id] = CostUnit + int64(math.Round(CostUnit*coef*miss))
		}

		return func(_, v string) int64 { return enter[v] }, nil
	}
}

// Option configures FindRoute and FindAllRoutes.
type Option func(*Options)

// Options holds search parameters. FindRoute reads Cost and MaxCost only.
type Options struct {
	Ctx           context.Context
	Cost          CostModel
	MaxCost       int64 // FindRoute: costliest acceptable route; 0 = unlimited
	MaxRoutes     int // complete routes examined; 0 = unlimited
	MaxDepth      int // route length in edges; 0 = unlimited
	MaxExpansions int // 0 = unlimited
	Parallel      int // branch workers; <= 1 is sequential
}

// DefaultOptions returns ResourceCost(1.0), no caps, sequential search.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Cost: ResourceCost(1.0),
	}
}

// WithContext sets a cancellation context for FindAllRoutes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost selects the edge cost model. A nil model keeps the default.
func WithCost(m CostModel) Option {
	return func(o *Options) {
		if m != nil {
			o.Cost = m
		}
	}
}

// WithMaxCost makes FindRoute report ErrUnreachable when the cheapest route
// costs more than c. Panics if c < 0.
func WithMaxCost(c int64) Option {
	if c < 0 {
		panic(fmt.Sprintf("route: WithMaxCost(%d): negative cap", c))
	}
	return func(o *Options) { o.MaxCost = c }
}

// WithMaxRoutes caps the number of complete routes examined.
// Panics if n < 0.
func WithMaxRoutes(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("route: WithMaxRoutes(%d): negative cap", n))
	}
	return func(o *Options) { o.MaxRoutes = n }
}

// WithMaxDepth caps route length in edges. Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("route: WithMaxDepth(%d): negative depth", d))
	}
	return func(o *Options) { o.MaxDepth = d }
}

// WithMaxExpansions caps search work. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("route: WithMaxExpansions(%d): negative cap", n))
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// WithParallel searches up to n first-move branches concurrently.
// Panics if n < 0.
func WithParallel(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("route: WithParallel(%d): negative worker count", n))
	}
	return func(o *Options) { o.Parallel = n }
}

// validateEndpoints applies the shared endpoint rules.
func validateEndpoints(b core.Board, start, end string) error {
	if b == nil {
		return ErrNilBoard
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %q", ErrInvalidEndpoints, start)
	}
	if !b.HasVertex(start) {
		return fmt.Errorf("%w: start %q not on board", ErrInvalidEndpoints, start)
	}
	if !b.HasVertex(end) {
		return fmt.Errorf("%w: end %q not on board", ErrInvalidEndpoints, end)
	}

	return nil
}
