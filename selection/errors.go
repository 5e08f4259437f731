// SPDX-License-Identifier: MIT

package selection

import "errors"

var (
	// ErrInvalidFolds indicates k < 2 or fewer samples than folds.
	ErrInvalidFolds = errors.New("selection: invalid fold count")

	// ErrInvalidRange indicates a non-positive step or an inverted range.
	ErrInvalidRange = errors.New("selection: invalid parameter range")

	// ErrNoValidTrial indicates that every grid combination failed (or the grid is empty).
	ErrNoValidTrial = errors.New("selection: no valid trial")

	// ErrMissingDependency indicates a CrossValidation without splitter or metric.
	ErrMissingDependency = errors.New("selection: splitter and metric are required")
)
