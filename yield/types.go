// SPDX-License-Identifier: MIT

package yield

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hexroute/core"
)

var (
	// ErrNilBoard is returned for a nil board.
	ErrNilBoard = errors.New("yield: board is nil")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("yield: random source is nil")

	// ErrBadTrials is returned for a negative trial count.
	ErrBadTrials = errors.New("yield: trials must be non-negative")

	// ErrBadScoring is returned for a negative or non-finite scoring parameter.
	ErrBadScoring = errors.New("yield: invalid scoring parameters")

	// ErrDegenerateScore names the empty-set case. Simulate scores such sets 0
	// and never returns this error; it exists so callers can label the case.
	ErrDegenerateScore = errors.New("yield: degenerate score for empty settlement set")
)

// Counts holds produced units per resource, indexed by core.Resource.
type Counts [core.ResourceCount]int

// Distinct is the number of resource types with a non-zero count.
func (c Counts) Distinct() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Scoring holds the parameters of the yield score.
type Scoring struct {
	Coefficient       float64 // MAGIC; tuned by calibrate
	Exponent          float64 // per-resource volume exponent
	DiversityExponent float64 // exponent of the distinct/ResourceCount factor
}

// DefaultScoring returns Coefficient 1, Exponent 2, DiversityExponent 1.
func DefaultScoring() Scoring {
	return Scoring{Coefficient: 1.0, Exponent: 2, DiversityExponent: 1}
}

// Validate rejects negative, NaN or infinite parameters.
func (s Scoring) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"coefficient", s.Coefficient},
		{"exponent", s.Exponent},
		{"diversity exponent", s.DiversityExponent},
	} {
		if p.v < 0 || math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrBadScoring, p.name, p.v)
		}
	}
	return nil
}

// Score applies the formula to one set's counts. All-zero counts score 0.
func (s Scoring) Score(c Counts) float64 {
	distinct := c.Distinct()
	if distinct == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range c {
		if v > 0 {
			sum += math.Pow(float64(v), s.Exponent)
		}
	}
	diversity := math.Pow(float64(distinct)/core.ResourceCount, s.DiversityExponent)

	return sum * s.Coefficient * diversity
}

// Result is the outcome of Simulate. Scores and Counts are index-aligned with
// the input sets.
type Result struct {
	Scores []float64
	Counts []Counts
	Best   int // BestIndex(Scores)
	Rolled int // trials run
	Robbed int // trials that rolled 7
}

// Option configures Simulate.
type Option func(*Options)

// Options holds simulation parameters.
type Options struct {
	Scoring Scoring
	Workers int // <= 1 runs on the caller's goroutine
}

// DefaultOptions returns DefaultScoring on one worker.
func DefaultOptions() Options {
	return Options{Scoring: DefaultScoring(), Workers: 1}
}

// WithScoring replaces the scoring parameters.
func WithScoring(s Scoring) Option {
	return func(o *Options) { o.Scoring = s }
}

// WithCoefficient sets only the MAGIC coefficient.
func WithCoefficient(c float64) Option {
	return func(o *Options) { o.Scoring.Coefficient = c }
}

// WithWorkers shards trials over n goroutines. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("yield: WithWorkers(%d): negative worker count", n))
	}
	return func(o *Options) { o.Workers = n }
}
