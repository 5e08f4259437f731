// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"
	"math"
)

// rangeSlack absorbs floating-point drift when the last step lands on max.
const rangeSlack = 1e-9

// LinearRange returns min, min+step, … up to max inclusive. The result
// always contains min: LinearRange(1e-8, 1e-6, 1e-6) == [1e-8].
//
// Errors:
//   - ErrInvalidRange for step <= 0, max < min or non-finite bounds.
func LinearRange(min, max, step float64) ([]float64, error) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("LinearRange: %w", ErrInvalidRange)
		}
	}
	if step <= 0 || max < min {
		return nil, fmt.Errorf("LinearRange(%g, %g, %g): %w", min, max, step, ErrInvalidRange)
	}
	limit := max + rangeSlack*step
	out := []float64{min}
	for i := 1; ; i++ {
		v := min + float64(i)*step
		if v > limit {
			break
		}
		out = append(out, v)
	}

	return out, nil
}

// IntRange returns min, min+step, … up to max inclusive.
//
// Errors:
//   - ErrInvalidRange for step <= 0 or max < min.
func IntRange(min, max, step int) ([]int, error) {
	if step <= 0 || max < min {
		return nil, fmt.Errorf("IntRange(%d, %d, %d): %w", min, max, step, ErrInvalidRange)
	}
	out := make([]int, 0, (max-min)/step+1)
	for v := min; v <= max; v += step {
		out = append(out, v)
	}

	return out, nil
}
