// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/metrics"
	"github.com/katalvlaran/lvlearn/regression"
)

// DefaultRuns is the number of repeated cross-validation passes.
const DefaultRuns = 1

// ModelFactory returns a fresh untrained model for one fold.
type ModelFactory func() (regression.Regressor, error)

// CrossValidation estimates generalization error by k-fold evaluation.
type CrossValidation struct {
	Splitter Splitter
	Metric   metrics.Metric
	Runs     int // <= 0 means DefaultRuns
}

// Evaluate returns the metric averaged over every fold of every run.
// Labels for stratification are the targets y.
//
// Implementation:
//   - For each run: split y, then for each fold train on the complement
//     and score predictions on the fold.
//
// Errors:
//   - ErrMissingDependency, matrix.ErrDimensionMismatch (len(y) != rows(X)),
//     and any split, fit, predict or metric error (wrapped with run/fold).
func (cv CrossValidation) Evaluate(newModel ModelFactory, X *matrix.Dense, y []float64) (float64, error) {
	if cv.Splitter == nil || cv.Metric == nil || newModel == nil {
		return 0, ErrMissingDependency
	}
	if X == nil || X.Rows() != len(y) {
		return 0, fmt.Errorf("CrossValidation.Evaluate: %w", matrix.ErrDimensionMismatch)
	}
	runs := cv.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}

	var sum float64
	var count int
	for run := 0; run < runs; run++ {
		folds, err := cv.Splitter.Split(y, run)
		if err != nil {
			return 0, fmt.Errorf("CrossValidation.Evaluate: %w", err)
		}
		for f, test := range folds {
			score, err := cv.scoreFold(newModel, X, y, test)
			if err != nil {
				return 0, fmt.Errorf("CrossValidation.Evaluate: run %d fold %d: %w", run, f, err)
			}
			sum += score
			count++
		}
	}

	return sum / float64(count), nil
}

// scoreFold trains on every index outside test and scores on test.
func (cv CrossValidation) scoreFold(newModel ModelFactory, X *matrix.Dense, y []float64, test []int) (float64, error) {
	train := complement(len(y), test)
	Xtr, err := X.SelectRows(train)
	if err != nil {
		return 0, err
	}
	Xte, err := X.SelectRows(test)
	if err != nil {
		return 0, err
	}
	model, err := newModel()
	if err != nil {
		return 0, err
	}
	if err = model.Fit(Xtr, pick(y, train)); err != nil {
		return 0, err
	}
	pred, err := model.Predict(Xte)
	if err != nil {
		return 0, err
	}

	return cv.Metric(pred, pick(y, test))
}

// pick returns ys[idx[0]], ys[idx[1]], ….
func pick(ys []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = ys[j]
	}

	return out
}
