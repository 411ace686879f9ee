// SPDX-License-Identifier: MIT

package yield

import "math/rand/v2"

// deriveSeed mixes a parent draw and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// deriveRNGs draws n independent generators from base, in stream order.
// base advances by exactly n draws.
func deriveRNGs(base *rand.Rand, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		s := uint64(i)
		out[i] = rand.New(rand.NewPCG(deriveSeed(base.Uint64(), s), s))
	}
	return out
}

// rollDice sums two independent uniform draws from 1..6.
func rollDice(r *rand.Rand) int {
	return r.IntN(6) + 1 + r.IntN(6) + 1
}
