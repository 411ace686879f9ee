// SPDX-License-Identifier: MIT

package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_DirectionFlips(t *testing.T) {
	s := newState(1.0)
	assert.Equal(t, Down, s.dir)

	next, cycle := s.advance(1, 0.5, 0.5, 0.05)
	assert.False(t, cycle)
	assert.InDelta(t, 0.5, next, 1e-12)

	// Improvement keeps the direction.
	next, _ = s.advance(2, 0.4, 0.5, 0.05)
	assert.Equal(t, Down, s.dir)
	assert.InDelta(t, 0.25, next, 1e-12)

	// A rise within the threshold keeps it too.
	next, _ = s.advance(3, 0.44, 0.5, 0.05)
	assert.Equal(t, Down, s.dir)
	assert.InDelta(t, 0.125, next, 1e-12)

	// 0.6 > 0.44 + 0.05 flips.
	next, _ = s.advance(4, 0.6, 0.5, 0.05)
	assert.Equal(t, Up, s.dir)
	assert.InDelta(t, 0.1875, next, 1e-12)
	assert.InDelta(t, 0.1875, s.coef, 1e-12)
}

func TestState_CycleOnRoundedRecurrence(t *testing.T) {
	// 1e-10 and 5e-11 both round to key 0.
	s := newState(1e-10)
	next, cycle := s.advance(1, 1, 0.5, 0.05)
	assert.True(t, cycle)
	assert.InDelta(t, 5e-11, next, 1e-20)
	assert.Equal(t, 1e-10, s.coef)
}

func TestPick(t *testing.T) {
	assert.Zero(t, pick(&Result{}))

	res := &Result{Batches: []Batch{
		{Coefficient: 1, Disagreement: 0.4},
		{Coefficient: 0.5, Disagreement: 0.2},
		{Coefficient: 0.25, Disagreement: 0.2},
		{Coefficient: 0.375, Disagreement: 0.3},
	}}
	assert.Equal(t, 0.5, pick(res))

	res.Converged = true
	assert.Equal(t, 0.375, pick(res))
}
