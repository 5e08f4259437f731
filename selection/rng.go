// SPDX-License-Identifier: MIT
//
// rng.go: RNG utilities shared by the fold splitters.
//
// Goals:
//   - Determinism: same seed ⇒ identical folds across platforms.
//   - A single RNG factory (MT19937 behind math/rand/v2); no time-based sources.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Each Split call owns its stream.

package selection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// rngFromSeed returns a deterministic *rand.Rand over a seeded MT19937.
// Complexity: O(1) plus the MT19937 state initialization.
func rngFromSeed(seed uint64) *rand.Rand {
	src := prng.NewMT19937()
	src.Seed(seed)

	return rand.New(src)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer). Stream 0 returns parent unchanged so a single
// run uses the configured seed verbatim.
func deriveSeed(parent, stream uint64) uint64 {
	if stream == 0 {
		return parent
	}
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
