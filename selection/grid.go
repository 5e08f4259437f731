// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/regression"
)

// Params is one point of the (τ, degree) grid.
type Params struct {
	Tau    float64
	Degree int
}

// String renders the parameter tree of a kernel ridge model.
func (p Params) String() string {
	return fmt.Sprintf("KernelRidge(tau=%g)\n  Polynomial(degree=%d, normalizer=SqrtDiag)", p.Tau, p.Degree)
}

// Trial is the outcome of evaluating one grid point. Err is non-nil when
// the point could not be scored; Score is then NaN.
type Trial struct {
	Params
	Score float64
	Err   error
}

// Result holds the winning parameters and every evaluated trial in grid order.
type Result struct {
	Best      Params
	BestScore float64
	Trials    []Trial
}

// Builder creates an untrained model for a grid point.
type Builder func(p Params) (regression.Regressor, error)

// KernelRidgeBuilder builds the normalized polynomial kernel ridge model.
func KernelRidgeBuilder(p Params) (regression.Regressor, error) {
	return regression.NewKernelRidge(p.Tau, p.Degree)
}

// GridSearch evaluates every (τ, degree) combination by cross-validation.
type GridSearch struct {
	CV      CrossValidation
	Taus    []float64
	Degrees []int
}

// Search scores the grid τ-major (every degree for the first τ, then the
// next τ) and returns the lowest-scoring point. Ties keep the earlier
// trial. A failing trial is recorded and skipped.
//
// Errors:
//   - ErrNoValidTrial when the grid is empty or every trial failed
//     (the returned Result still lists the trials).
//
// Complexity:
//   - |Taus|·|Degrees| cross-validations.
func (g GridSearch) Search(build Builder, X *matrix.Dense, y []float64) (Result, error) {
	res := Result{BestScore: math.Inf(1), Trials: make([]Trial, 0, len(g.Taus)*len(g.Degrees))}
	found := false
	for _, tau := range g.Taus {
		for _, deg := range g.Degrees {
			p := Params{Tau: tau, Degree: deg}
			score, err := g.CV.Evaluate(func() (regression.Regressor, error) { return build(p) }, X, y)
			if err == nil && math.IsNaN(score) {
				err = fmt.Errorf("score is NaN")
			}
			if err != nil {
				res.Trials = append(res.Trials, Trial{Params: p, Score: math.NaN(), Err: err})
				continue
			}
			res.Trials = append(res.Trials, Trial{Params: p, Score: score})
			if !found || score < res.BestScore {
				res.Best, res.BestScore, found = p, score, true
			}
		}
	}
	if !found {
		return res, fmt.Errorf("GridSearch.Search: %d trials: %w", len(res.Trials), ErrNoValidTrial)
	}

	return res, nil
}
