// SPDX-License-Identifier: MIT

// Package verify runs the one-gesture verification flow: recommend a route,
// enumerate every alternative holding the same number of settlements, score
// them all by simulation and report how far the recommendation is from the
// simulated best.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/render"
	"github.com/katalvlaran/hexroute/route"
	"github.com/katalvlaran/hexroute/settle"
	"github.com/katalvlaran/hexroute/yield"
)

var (
	// ErrNoSettlements is returned when the recommended route holds no
	// settlement, so there is nothing to compare.
	ErrNoSettlements = errors.New("verify: recommended route has no settlements")

	// ErrBadCoefficient is returned for a negative or non-finite coefficient.
	ErrBadCoefficient = errors.New("verify: coefficient must be finite and non-negative")

	// ErrNoAlternatives is returned when enumeration finds no route of the
	// required settlement count.
	ErrNoAlternatives = errors.New("verify: no alternative routes")
)

// DefaultTrials is the simulation length per verification.
const DefaultTrials = 10000

// Options configures Verify.
type Options struct {
	Coefficient float64        // MAGIC: resource discount of the route cost
	Scoring     yield.Scoring  // simulator score parameters
	Trials      int            // dice rolls per simulation
	Workers     int            // simulation shards
	Search      []route.Option // enumeration caps and fan-out
}

// Option configures Verify.
type Option func(*Options)

// DefaultOptions returns coefficient 1, default scoring, DefaultTrials.
func DefaultOptions() Options {
	return Options{
		Coefficient: 1.0,
		Scoring:     yield.DefaultScoring(),
		Trials:      DefaultTrials,
		Workers:     1,
	}
}

// WithCoefficient sets the MAGIC coefficient.
func WithCoefficient(c float64) Option { return func(o *Options) { o.Coefficient = c } }

// WithScoring sets the yield score parameters.
func WithScoring(s yield.Scoring) Option { return func(o *Options) { o.Scoring = s } }

// WithTrials sets the simulation length.
func WithTrials(n int) Option { return func(o *Options) { o.Trials = n } }

// WithWorkers sets the simulation shard count.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithSearch appends route options: caps and parallel fan-out for the
// enumeration, WithMaxCost for the recommendation.
func WithSearch(opts ...route.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// Report is the outcome of one verification.
type Report struct {
	Start, End   string
	Chosen       route.Result
	Alternatives []route.Route
	Settlements  []route.Settlements // index-aligned with Alternatives
	Scores       []float64           // index-aligned with Alternatives
	Counts       []yield.Counts      // index-aligned with Alternatives
	Best         int                 // index of the best-scoring alternative
	ChosenIndex  int                 // index of Chosen.Route in Alternatives, -1 if absent
	Ratio        float64             // SymmetricDifferenceRatio(chosen, best)
}

// K is the settlement count every alternative holds.
func (r *Report) K() int { return len(r.Chosen.Settlements) }

// BestRoute returns the best-scoring alternative and its settlements.
func (r *Report) BestRoute() (route.Route, route.Settlements) {
	if r.Best < 0 || r.Best >= len(r.Alternatives) {
		return nil, nil
	}
	return r.Alternatives[r.Best], r.Settlements[r.Best]
}

// Agrees reports whether the chosen settlements match the simulated best.
func (r *Report) Agrees() bool { return r.Ratio == 0 }

// Verify recommends a route from start to end, enumerates the alternatives
// with the same settlement count and simulates all of them with rng.
//
// Errors from the route finder, enumerator and simulator are returned
// wrapped; ErrNoSettlements and ErrNoAlternatives mark samples with nothing
// to compare.
func Verify(ctx context.Context, b core.Board, start, end string, rng *rand.Rand, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Coefficient < 0 || math.IsNaN(o.Coefficient) || math.IsInf(o.Coefficient, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCoefficient, o.Coefficient)
	}

	// 1. Recommendation
	find := append(slices.Clone(o.Search), route.WithCost(route.ResourceCost(o.Coefficient)))
	chosen, err := route.FindRoute(b, start, end, find...)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	k := len(chosen.Settlements)
	if k == 0 {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoSettlements, start, end)
	}

	// 2. Alternatives with exactly k settlements
	search := append([]route.Option{route.WithContext(ctx)}, o.Search...)
	routes, sets, err := route.FindAllRoutes(b, start, end, k, search...)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: %s → %s, k=%d", ErrNoAlternatives, start, end, k)
	}

	// 3. Simulation
	plain := make([][]string, len(sets))
	for i, s := range sets {
		plain[i] = s
	}
	sim, err := yield.Simulate(b, plain, o.Trials, rng, yield.WithScoring(o.Scoring), yield.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	rep := &Report{
		Start:        start,
		End:          end,
		Chosen:       chosen,
		Alternatives: routes,
		Settlements:  sets,
		Scores:       sim.Scores,
		Counts:       sim.Counts,
		Best:         sim.Best,
		ChosenIndex:  indexOf(routes, chosen.Route),
	}
	rep.Ratio = settle.SymmetricDifferenceRatio(chosen.Settlements, sets[sim.Best])

	return rep, nil
}

// Layers renders the chosen route, every alternative and the best alternative,
// in that order.
func (r *Report) Layers(loc render.Locator) ([]render.Layer, error) {
	out := make([]render.Layer, 0, len(r.Alternatives)+2)

	l, err := render.NewLayer(loc, render.RoleChosen, r.Chosen.Route, r.Chosen.Settlements)
	if err != nil {
		return nil, err
	}
	out = append(out, l)

	for i, alt := range r.Alternatives {
		if l, err = render.NewLayer(loc, render.RoleVerification, alt, r.Settlements[i]); err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	if best, sets := r.BestRoute(); best != nil {
		if l, err = render.NewLayer(loc, render.RoleBest, best, sets); err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, nil
}

func indexOf(routes []route.Route, want route.Route) int {
	return slices.IndexFunc(routes, func(r route.Route) bool { return slices.Equal(r, want) })
}
