// SPDX-License-Identifier: MIT

// Package preprocess holds feature transforms that are fitted on training
// data and then applied unchanged to any later input.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
)

// ErrNotFitted indicates Transform was called before a successful Fit.
var ErrNotFitted = errors.New("preprocess: transform used before fit")

// Transformer learns parameters from a feature matrix and applies them.
type Transformer interface {
	// Fit learns the transform from X (rows are samples).
	Fit(X matrix.Matrix) error
	// Transform returns a transformed copy of X.
	Transform(X matrix.Matrix) (*matrix.Dense, error)
}

// Rescaler maps every feature to (x - min) / (max - min) with min and max
// taken per column from the data passed to Fit. Values outside the fitted
// range map outside [0, 1]. A constant column maps to 0.
type Rescaler struct {
	mins  []float64
	spans []float64
}

var _ Transformer = (*Rescaler)(nil)

// Fit records per-column minimum and span of X.
func (r *Rescaler) Fit(X matrix.Matrix) error {
	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return fmt.Errorf("Rescaler.Fit: %w", err)
	}
	spans := make([]float64, len(mins))
	for j := range mins {
		spans[j] = maxs[j] - mins[j]
	}
	r.mins, r.spans = mins, spans

	return nil
}

// Fitted reports whether Fit has succeeded.
func (r *Rescaler) Fitted() bool { return r.mins != nil }

// Transform rescales a copy of X.
//
// Errors:
//   - ErrNotFitted before Fit.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when X is nil or
//     has a different column count than the fitted data.
func (r *Rescaler) Transform(X matrix.Matrix) (*matrix.Dense, error) {
	if !r.Fitted() {
		return nil, ErrNotFitted
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("Rescaler.Transform: %w", err)
	}
	if X.Cols() != len(r.mins) {
		return nil, fmt.Errorf("Rescaler.Transform: %d columns, fitted %d: %w", X.Cols(), len(r.mins), matrix.ErrDimensionMismatch)
	}
	out, err := matrix.NewDense(X.Rows(), X.Cols())
	if err != nil {
		return nil, fmt.Errorf("Rescaler.Transform: %w", err)
	}

	var v float64
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, fmt.Errorf("Rescaler.Transform: %w", err)
			}
			if r.spans[j] == 0 {
				v = 0
			} else {
				v = (v - r.mins[j]) / r.spans[j]
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Rescaler.Transform: %w", err)
			}
		}
	}

	return out, nil
}

// FitTransform is Fit followed by Transform on the same matrix.
func FitTransform(t Transformer, X matrix.Matrix) (*matrix.Dense, error) {
	if err := t.Fit(X); err != nil {
		return nil, err
	}

	return t.Transform(X)
}
