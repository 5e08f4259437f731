// SPDX-License-Identifier: MIT

package regression

import "errors"

var (
	// ErrNotTrained indicates Predict on a model without a successful Fit.
	ErrNotTrained = errors.New("regression: model is not trained")

	// ErrTrainingFailed indicates the regularized kernel system could not be solved.
	ErrTrainingFailed = errors.New("regression: training failed")

	// ErrInvalidParameter indicates a negative or non-finite τ or a missing kernel.
	ErrInvalidParameter = errors.New("regression: invalid parameter")

	// ErrShape indicates inconsistent sample counts or feature widths.
	ErrShape = errors.New("regression: shape mismatch")
)
