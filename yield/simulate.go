// SPDX-License-Identifier: MIT

package yield

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexroute/core"
)

// production[roll] is the summed output of one set for that dice total.
type production [core.MaxRoll + 1]Counts

// tally is the outcome of one shard of trials.
type tally struct {
	counts []Counts
	rolled int
	robbed int
}

// Simulate rolls trials dice pairs and scores every settlement set.
//
// Errors:
//   - ErrNilBoard, ErrNilRand, ErrBadTrials, ErrBadScoring for bad input.
//   - core.ErrVertexNotFound (wrapped) when a set names an unknown vertex.
//
// An empty set scores 0. With no sets the result is empty and Best is -1.
func Simulate(b core.Board, sets [][]string, trials int, rng *rand.Rand, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if trials < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadTrials, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Scoring.Validate(); err != nil {
		return nil, err
	}

	prods, err := productions(b, sets)
	if err != nil {
		return nil, err
	}

	var t tally
	if o.Workers <= 1 || trials < o.Workers {
		t = run(prods, trials, rng)
	} else {
		if t, err = runSharded(prods, trials, rng, o.Workers); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Scores: make([]float64, len(sets)),
		Counts: t.counts,
		Rolled: t.rolled,
		Robbed: t.robbed,
	}
	for i, c := range t.counts {
		res.Scores[i] = o.Scoring.Score(c)
	}
	res.Best = BestIndex(res.Scores)

	return res, nil
}

// BestIndex returns the index of the highest score, the first on ties,
// or -1 for an empty slice.
func BestIndex(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}

// productions resolves every set into a per-roll output table. Boards other
// than *core.Graph are not validated on insert, so resources are checked here.
func productions(b core.Board, sets [][]string) ([]production, error) {
	out := make([]production, len(sets))
	for i, set := range sets {
		for _, id := range set {
			t, err := b.RollTable(id)
			if err != nil {
				return nil, fmt.Errorf("yield: set %d: %w", i, err)
			}
			for roll, rs := range t {
				if roll < core.MinRoll || roll > core.MaxRoll || roll == core.RobberRoll {
					continue
				}
				for _, r := range rs {
					if !r.Valid() {
						return nil, fmt.Errorf("yield: vertex %q: %w: %d", id, core.ErrUnknownResource, r)
					}
					out[i][roll][r]++
				}
			}
		}
	}
	return out, nil
}

// run executes trials on one generator.
func run(prods []production, trials int, r *rand.Rand) tally {
	t := tally{counts: make([]Counts, len(prods)), rolled: trials}
	for range trials {
		roll := rollDice(r)
		if roll == core.RobberRoll {
			t.robbed++
			continue
		}
		for i := range prods {
			p := &prods[i][roll]
			for res, n := range p {
				t.counts[i][res] += n
			}
		}
	}
	return t
}

// runSharded splits trials over workers shards, the first trials%workers
// shards taking one extra trial, and reduces in shard order.
func runSharded(prods []production, trials int, rng *rand.Rand, workers int) (tally, error) {
	rngs := deriveRNGs(rng, workers)
	parts := make([]tally, workers)

	var g errgroup.Group
	for i := range workers {
		n := trials / workers
		if i < trials%workers {
			n++
		}
		g.Go(func() error {
			parts[i] = run(prods, n, rngs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	total := tally{counts: make([]Counts, len(prods))}
	for _, p := range parts {
		total.rolled += p.rolled
		total.robbed += p.robbed
		for i := range p.counts {
			for r, n := range p.counts[i] {
				total.counts[i][r] += n
			}
		}
	}
	return total, nil
}
