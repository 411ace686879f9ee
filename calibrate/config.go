// SPDX-License-Identifier: MIT

package calibrate

import (
	"fmt"
	"math"
)

// Config holds the calibration parameters.
type Config struct {
	BatchSize            int     // samples per batch
	InitialCoefficient   float64 // starting MAGIC value
	ConvergenceThreshold float64 // stop when e <= this
	Step                 float64 // multiplicative step, in (0, 1)
	StepThreshold        float64 // rise in e that flips direction
	TrialsPerScore       int     // dice rolls per verification
	MaxBatches           int     // hard cap on batches
	MaxAttemptsFactor    int     // draws per batch = BatchSize * this
	Workers              int     // simulation shards per verification
	MaxRoutes            int     // enumeration cap per sample; 0 = none
	MaxDepth             int     // route edge cap per sample; 0 = none
	MaxExpansions        int     // enumeration work cap per sample; 0 = none
	Parallel             int     // enumeration fan-out; 0 or 1 = sequential
	MaxCost              int64   // recommendation cost cap; 0 = none
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:            20,
		InitialCoefficient:   1.0,
		ConvergenceThreshold: 0.05,
		Step:                 0.5,
		StepThreshold:        0.05,
		TrialsPerScore:       10000,
		MaxBatches:           50,
		MaxAttemptsFactor:    5,
		Workers:              1,
		MaxExpansions:        200000,
	}
}

// Validate reports the first invalid field, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%w: %s = %v", ErrBadConfig, field, v)
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	switch {
	case c.BatchSize < 1:
		return bad("batch size", c.BatchSize)
	case !finite(c.InitialCoefficient) || c.InitialCoefficient <= 0:
		return bad("initial coefficient", c.InitialCoefficient)
	case !finite(c.ConvergenceThreshold) || c.ConvergenceThreshold < 0:
		return bad("convergence threshold", c.ConvergenceThreshold)
	case !finite(c.Step) || c.Step <= 0 || c.Step >= 1:
		return bad("step", c.Step)
	case !finite(c.StepThreshold) || c.StepThreshold < 0:
		return bad("step threshold", c.StepThreshold)
	case c.TrialsPerScore < 1:
		return bad("trials per score", c.TrialsPerScore)
	case c.MaxBatches < 1:
		return bad("max batches", c.MaxBatches)
	case c.MaxAttemptsFactor < 1:
		return bad("max attempts factor", c.MaxAttemptsFactor)
	case c.Workers < 0:
		return bad("workers", c.Workers)
	case c.MaxRoutes < 0:
		return bad("max routes", c.MaxRoutes)
	case c.MaxDepth < 0:
		return bad("max depth", c.MaxDepth)
	case c.MaxExpansions < 0:
		return bad("max expansions", c.MaxExpansions)
	case c.Parallel < 0:
		return bad("parallel", c.Parallel)
	case c.MaxCost < 0:
		return bad("max cost", c.MaxCost)
	}
	return nil
}
