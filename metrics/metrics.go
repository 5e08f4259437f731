// SPDX-License-Identifier: MIT

// Package metrics scores predictions against ground truth. Lower is better
// for every metric here.
package metrics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch indicates prediction and truth slices of different length.
	ErrLengthMismatch = errors.New("metrics: length mismatch")

	// ErrEmpty indicates a metric over zero samples.
	ErrEmpty = errors.New("metrics: no samples")
)

// Metric scores pred against truth.
type Metric func(pred, truth []float64) (float64, error)

// MeanSquaredError returns Σ(pred-truth)² / n.
func MeanSquaredError(pred, truth []float64) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, fmt.Errorf("MeanSquaredError: %w", err)
	}
	diff := floats.SubTo(make([]float64, len(pred)), pred, truth)

	return floats.Dot(diff, diff) / float64(len(pred)), nil
}

// MeanAbsoluteError returns Σ|pred-truth| / n.
func MeanAbsoluteError(pred, truth []float64) (float64, error) {
	if err := check(pred, truth); err != nil {
		return 0, fmt.Errorf("MeanAbsoluteError: %w", err)
	}

	return floats.Distance(pred, truth, 1) / float64(len(pred)), nil
}

// check validates the shared preconditions.
func check(pred, truth []float64) error {
	if len(pred) != len(truth) {
		return fmt.Errorf("%d vs %d: %w", len(pred), len(truth), ErrLengthMismatch)
	}
	if len(pred) == 0 {
		return ErrEmpty
	}

	return nil
}

var (
	_ Metric = MeanSquaredError
	_ Metric = MeanAbsoluteError
)
