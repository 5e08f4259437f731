// SPDX-License-Identifier: MIT

package dataset

import "gonum.org/v1/gonum/floats"

// LinSpace returns n values starting at s and growing by (e-s)/n per step,
// with the last value overwritten by e.
//
// The step divides by n, not n-1, so the gap before the final value is
// wider than the others: LinSpace(0, 10, 5) == [0, 2, 4, 6, 10].
// s <= e is not required. n == 1 yields [e].
//
// Errors:
//   - ErrTooFewPoints when n < 1.
//
// Complexity: O(n).
func LinSpace(s, e float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, wrapf("LinSpace", ErrTooFewPoints)
	}
	step := (e - s) / float64(n)
	out := make([]float64, n)
	v := s
	for i := range out {
		out[i] = v
		v += step
	}
	out[n-1] = e

	return out, nil
}

// Bounds is the observed [Min, Max] range of a coordinate.
type Bounds struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (b Bounds) Span() float64 { return b.Max - b.Min }

// BoundsOf returns the minimum and maximum of xs.
// Errors: ErrEmptySamples when xs is empty.
func BoundsOf(xs []float64) (Bounds, error) {
	if len(xs) == 0 {
		return Bounds{}, wrapf("BoundsOf", ErrEmptySamples)
	}

	return Bounds{Min: floats.Min(xs), Max: floats.Max(xs)}, nil
}
