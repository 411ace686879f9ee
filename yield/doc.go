// SPDX-License-Identifier: MIT

// Package yield scores candidate settlement sets by Monte-Carlo dice rolls.
//
// Every trial rolls two independent six-sided dice and sums them. A 7 is the
// robber: nothing is produced for any set. Any other total adds, for every
// vertex of every set, one unit of each resource in that vertex's roll-table
// entry for the total. All sets see the same dice sequence.
//
// After the trials each set is scored
//
//	Σ count[r]^Exponent · Coefficient · (distinct / ResourceCount)^DiversityExponent
//
// where distinct counts resource types with a non-zero total. Coefficient is
// the MAGIC coefficient tuned by package calibrate; Exponent rewards volume in
// one resource and the diversity factor rewards breadth. Scores are only
// comparable within one Simulate call.
//
// Determinism: the caller owns the *rand.Rand. Same seed, same trials and the
// same worker count give identical counts and scores. WithWorkers(n) splits
// the trials into n shards whose generators are derived from rng in shard
// order before any shard starts.
package yield
