// SPDX-License-Identifier: MIT

package calibrate

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// keyScale is the rounding resolution of tried coefficients.
const keyScale = 1e9

// state is the mutable calibration state of one run.
type state struct {
	coef     float64
	dir      Direction
	prev     float64
	havePrev bool
	tried    *redblacktree.Tree // rounded coefficient → batch that proposed it
}

func newState(initial float64) *state {
	s := &state{coef: initial, dir: Down, tried: redblacktree.NewWith(utils.Int64Comparator)}
	s.tried.Put(coefKey(initial), 0)
	return s
}

func coefKey(c float64) int64 { return int64(math.Round(c * keyScale)) }

// advance applies the update rule for disagreement e observed in batch and
// reports whether the proposed coefficient was tried before. On a cycle the
// coefficient is left unchanged.
func (s *state) advance(batch int, e, step, threshold float64) (next float64, cycle bool) {
	if s.havePrev && e > s.prev+threshold {
		s.dir = -s.dir
	}
	s.prev, s.havePrev = e, true

	next = s.coef * (1 + float64(s.dir)*step)
	key := coefKey(next)
	if _, found := s.tried.Get(key); found {
		return next, true
	}
	s.tried.Put(key, batch)
	s.coef = next

	return next, false
}
