// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlearn/kernel"
	"github.com/katalvlaran/lvlearn/matrix"
)

// Regressor is a trainable model over row-sample feature matrices.
type Regressor interface {
	Fit(X *matrix.Dense, y []float64) error
	Predict(X *matrix.Dense) ([]float64, error)
}

// KernelRidge is kernel ridge regression with regularization Tau.
type KernelRidge struct {
	Tau    float64       // ridge strength, >= 0
	Kernel kernel.Kernel // similarity used for both training and prediction

	train *matrix.Dense // copy of the training features
	alpha []float64     // dual coefficients, one per training sample
	cond  float64       // condition estimate of the last solve, 0 when unknown
}

var _ Regressor = (*KernelRidge)(nil)

// NewKernelRidge returns a model with a normalized polynomial kernel of the
// given degree, the configuration used by the regression demo.
func NewKernelRidge(tau float64, degree int) (*KernelRidge, error) {
	p, err := kernel.NewPolynomial(degree)
	if err != nil {
		return nil, fmt.Errorf("NewKernelRidge: %w: %w", ErrInvalidParameter, err)
	}

	return &KernelRidge{Tau: tau, Kernel: kernel.Normalized(p)}, nil
}

// Fit trains the model on X (n×d) and targets y (len n).
//
// Implementation:
//   - Stage 1: validate τ, kernel and shapes.
//   - Stage 2: build K = Gram(X, X) and add τ to the diagonal.
//   - Stage 3: Cholesky solve; on factorization failure, LU solve.
//     An ill-conditioned but finite solution is kept (see Condition).
//
// Errors:
//   - ErrInvalidParameter, ErrShape, ErrTrainingFailed (wrapping the cause).
//
// Complexity:
//   - Time O(n²·d + n³), Space O(n²).
func (m *KernelRidge) Fit(X *matrix.Dense, y []float64) error {
	m.alpha, m.train, m.cond = nil, nil, 0
	if m.Kernel == nil || math.IsNaN(m.Tau) || math.IsInf(m.Tau, 0) || m.Tau < 0 {
		return fmt.Errorf("KernelRidge.Fit: tau=%v: %w", m.Tau, ErrInvalidParameter)
	}
	if X == nil || X.Rows() != len(y) {
		return fmt.Errorf("KernelRidge.Fit: %w", ErrShape)
	}
	K, err := kernel.Gram(m.Kernel, X, X)
	if err != nil {
		return fmt.Errorf("KernelRidge.Fit: %w", err)
	}

	n := len(y)
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		data = append(data, K.RowView(i)...)
		data[i*n+i] += m.Tau
	}
	alpha, cond, err := solve(mat.NewSymDense(n, data), mat.NewVecDense(n, append([]float64(nil), y...)))
	if err != nil {
		return fmt.Errorf("KernelRidge.Fit: %w: %w", ErrTrainingFailed, err)
	}
	m.train = X.Clone().(*matrix.Dense)
	m.alpha = alpha
	m.cond = cond

	return nil
}

// solve returns x with A·x = b, preferring Cholesky and falling back to LU.
func solve(A *mat.SymDense, b *mat.VecDense) ([]float64, float64, error) {
	n := b.Len()
	x := mat.NewVecDense(n, nil)

	var chol mat.Cholesky
	var err error
	if chol.Factorize(A) {
		err = chol.SolveVecTo(x, b)
	} else {
		err = x.SolveVec(A, b)
	}

	var cond float64
	var c mat.Condition
	if errors.As(err, &c) {
		cond = float64(c)
		if math.IsInf(cond, 0) {
			return nil, cond, err
		}
		err = nil
	}
	if err != nil {
		return nil, 0, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, cond, fmt.Errorf("coefficient %d is %v", i, out[i])
		}
	}

	return out, cond, nil
}

// Predict returns ŷ for every row of X.
//
// Errors:
//   - ErrNotTrained before a successful Fit.
//   - matrix.ErrDimensionMismatch when X has a different feature width.
func (m *KernelRidge) Predict(X *matrix.Dense) ([]float64, error) {
	if m.alpha == nil {
		return nil, ErrNotTrained
	}
	G, err := kernel.Gram(m.Kernel, X, m.train)
	if err != nil {
		return nil, fmt.Errorf("KernelRidge.Predict: %w", err)
	}
	out := make([]float64, X.Rows())
	var acc float64
	for i := range out {
		acc = 0
		for j, v := range G.RowView(i) {
			acc += m.alpha[j] * v
		}
		out[i] = acc
	}

	return out, nil
}

// Trained reports whether the model holds fitted coefficients.
func (m *KernelRidge) Trained() bool { return m.alpha != nil }

// Condition returns the condition-number estimate reported by the last
// solve when it exceeded gonum's tolerance, and 0 otherwise.
func (m *KernelRidge) Condition() float64 { return m.cond }
