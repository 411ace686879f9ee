// SPDX-License-Identifier: MIT

// Package calibrate tunes the MAGIC coefficient offline.
//
// Each batch draws BatchSize random (start, end) pairs from the caller's
// generator and runs verify.Verify on every pair with the current
// coefficient. The mean SymmetricDifferenceRatio between the route finder's
// settlements and the simulated best is the batch disagreement e.
//
// Update rule, applied after every batch that has not converged:
//
//	if e > previous e + StepThreshold { flip direction }
//	coefficient *= 1 + Step   (direction up)
//	coefficient *= 1 - Step   (direction down, the initial direction)
//
// Tried coefficients, rounded to 1e-9, are kept in an ordered tree; a value
// that recurs stops the loop with CycleDetected. The loop also stops when
// e <= ConvergenceThreshold or after MaxBatches batches. Neither a cycle nor
// running out of batches is an error.
//
// Failing samples (unreachable pairs, zero settlements, exhausted searches)
// are logged at debug level and skipped; a batch that cannot collect a single
// sample within BatchSize*MaxAttemptsFactor draws fails with ErrNoSamples.
package calibrate
