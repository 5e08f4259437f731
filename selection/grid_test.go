package selection_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/metrics"
	"github.com/katalvlaran/lvlearn/regression"
	"github.com/katalvlaran/lvlearn/selection"
)

// constModel predicts a fixed value; its fit error is configurable.
type constModel struct {
	value  float64
	fitErr error
}

func (m *constModel) Fit(*matrix.Dense, []float64) error { return m.fitErr }

func (m *constModel) Predict(X *matrix.Dense) ([]float64, error) {
	out := make([]float64, X.Rows())
	for i := range out {
		out[i] = m.value
	}

	return out, nil
}

type SelectionSuite struct {
	suite.Suite
	X  *matrix.Dense
	y  []float64
	cv selection.CrossValidation
}

func (s *SelectionSuite) SetupTest() {
	s.y = []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	X, err := matrix.NewColumn([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	s.Require().NoError(err)
	s.X = X
	s.cv = selection.CrossValidation{
		Splitter: selection.StratifiedKFold{K: 5, Seed: 3463},
		Metric:   metrics.MeanSquaredError,
	}
}

// TestEvaluateConstantModel: predicting 2 for all-zero targets scores 4 on every fold.
func (s *SelectionSuite) TestEvaluateConstantModel() {
	score, err := s.cv.Evaluate(func() (regression.Regressor, error) {
		return &constModel{value: 2}, nil
	}, s.X, s.y)
	s.Require().NoError(err)
	s.Equal(4.0, score)
}

func (s *SelectionSuite) TestEvaluateErrors() {
	_, err := selection.CrossValidation{}.Evaluate(nil, s.X, s.y)
	s.ErrorIs(err, selection.ErrMissingDependency)

	_, err = s.cv.Evaluate(func() (regression.Regressor, error) { return &constModel{}, nil }, s.X, s.y[:3])
	s.ErrorIs(err, matrix.ErrDimensionMismatch)

	boom := errors.New("boom")
	_, err = s.cv.Evaluate(func() (regression.Regressor, error) { return &constModel{fitErr: boom}, nil }, s.X, s.y)
	s.ErrorIs(err, boom)
}

// TestSearchPicksLowestAndKeepsFirstTie uses |degree-3| as the prediction,
// so degrees 3 scores 0 and ties between τ values keep the first τ.
func (s *SelectionSuite) TestSearchPicksLowestAndKeepsFirstTie() {
	g := selection.GridSearch{CV: s.cv, Taus: []float64{0.1, 0.2}, Degrees: []int{1, 2, 3, 4}}
	res, err := g.Search(func(p selection.Params) (regression.Regressor, error) {
		return &constModel{value: math.Abs(float64(p.Degree - 3))}, nil
	}, s.X, s.y)
	s.Require().NoError(err)
	s.Equal(selection.Params{Tau: 0.1, Degree: 3}, res.Best)
	s.Equal(0.0, res.BestScore)
	s.Len(res.Trials, 8)
	s.Equal(selection.Params{Tau: 0.2, Degree: 1}, res.Trials[4].Params, "τ-major order")
}

func (s *SelectionSuite) TestSearchRecordsFailures() {
	boom := errors.New("boom")
	g := selection.GridSearch{CV: s.cv, Taus: []float64{1}, Degrees: []int{1, 2}}
	res, err := g.Search(func(p selection.Params) (regression.Regressor, error) {
		if p.Degree == 1 {
			return nil, boom
		}
		return &constModel{value: 1}, nil
	}, s.X, s.y)
	s.Require().NoError(err)
	s.Equal(2, res.Best.Degree)
	s.ErrorIs(res.Trials[0].Err, boom)
	s.True(math.IsNaN(res.Trials[0].Score))

	res, err = g.Search(func(selection.Params) (regression.Regressor, error) { return nil, boom }, s.X, s.y)
	s.ErrorIs(err, selection.ErrNoValidTrial)
	s.Len(res.Trials, 2)

	_, err = selection.GridSearch{CV: s.cv}.Search(selection.KernelRidgeBuilder, s.X, s.y)
	s.ErrorIs(err, selection.ErrNoValidTrial)
}

func TestSelectionSuite(t *testing.T) {
	suite.Run(t, new(SelectionSuite))
}

// TestSearchKernelRidge runs a small real search on a noise-free half cosine.
func TestSearchKernelRidge(t *testing.T) {
	xs, err := dataset.LinSpace(0, 1, 60)
	require.NoError(t, err)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Cos(math.Pi * x)
	}
	X, err := matrix.NewColumn(xs)
	require.NoError(t, err)

	g := selection.GridSearch{
		CV: selection.CrossValidation{
			Splitter: selection.StratifiedKFold{K: 5, Seed: 3463},
			Metric:   metrics.MeanSquaredError,
		},
		Taus:    []float64{1e-8},
		Degrees: []int{1, 8},
	}
	res, err := g.Search(selection.KernelRidgeBuilder, X, ys)
	require.NoError(t, err)
	require.Equal(t, 8, res.Best.Degree, "a linear model cannot follow a cosine")
	require.Contains(t, res.Best.String(), "degree=8")
}
