// SPDX-License-Identifier: MIT
// Package: lvlearn/dataset
//
// impl_generate.go: reproducible noisy cosine samples.
//
// Contract:
//   • Generate(n, seed, noNoise, opts...) returns exactly max(n,0) samples.
//   • Per sample the stream is consumed x first, then (only with noise) ε.
//   • Strict determinism per (n, seed, noNoise, options); no panics.

package dataset

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Samples is an ordered set of (x, y) pairs. X and Y always have equal length.
type Samples struct {
	X []float64 // inputs, one per sample
	Y []float64 // targets, Y[i] belongs to X[i]
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s.X) }

// Inputs returns a copy of X.
func (s Samples) Inputs() []float64 { return append([]float64(nil), s.X...) }

// Outputs returns a copy of Y.
func (s Samples) Outputs() []float64 { return append([]float64(nil), s.Y...) }

// Matrix returns X as an n×1 feature matrix (a copy).
// Errors: matrix.ErrInvalidDimensions for an empty set.
func (s Samples) Matrix() (*matrix.Dense, error) {
	return matrix.NewColumn(s.X)
}

// Generate draws n samples with x ~ N(0,1) and y = cos(π·x) + σ·ε, ε ~ N(0,1).
//
// Implementation:
//   - Stage 1: seed an MT19937 stream and wrap it in a standard normal.
//   - Stage 2: for i in 0..n-1 draw x; draw ε only when noise is enabled.
//
// Behavior highlights:
//   - noNoise ⇒ y_i == cos(π·x_i) exactly, and the stream yields one draw per sample.
//   - n <= 0 ⇒ empty, non-nil slices.
//
// Complexity:
//   - Time O(n), Space O(n).
func Generate(n int, seed uint64, noNoise bool, opts ...Option) Samples {
	cfg := newConfig(opts...)
	if n < 0 {
		n = 0
	}
	src := prng.NewMT19937()
	src.Seed(seed)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	out := Samples{X: make([]float64, n), Y: make([]float64, n)}
	var x, eps float64
	for i := 0; i < n; i++ {
		x = normal.Rand()
		eps = 0
		if !noNoise {
			eps = normal.Rand()
		}
		out.X[i] = x
		out.Y[i] = math.Cos(math.Pi*x) + cfg.noiseScale*eps
	}

	return out
}
