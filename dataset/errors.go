// SPDX-License-Identifier: MIT
// Package: lvlearn/dataset
//
// errors.go: sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context (file, line, column) with %w.
//   • Generators never fail at runtime; option constructors panic on nonsense.

package dataset

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates LinSpace was asked for fewer than one value.
var ErrTooFewPoints = errors.New("dataset: point count must be >= 1")

// ErrEmptySamples indicates a statistic was requested over an empty slice.
var ErrEmptySamples = errors.New("dataset: empty sample slice")

// ErrRaggedRow indicates a CSV row whose width differs from the first data row.
var ErrRaggedRow = errors.New("dataset: ragged CSV row")

// ErrParse indicates a CSV cell that is not a finite number.
var ErrParse = errors.New("dataset: cannot parse numeric cell")

// ErrTooFewColumns indicates a table without two coordinates and a label.
var ErrTooFewColumns = errors.New("dataset: table needs at least 3 columns")

// ErrNoRows indicates a CSV file that holds no data rows.
var ErrNoRows = errors.New("dataset: no data rows")

// ErrLabelColumn indicates a label column index outside the table or
// overlapping the coordinate columns.
var ErrLabelColumn = errors.New("dataset: invalid label column")

// wrapf attaches an operation tag to err, preserving it for errors.Is.
func wrapf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
