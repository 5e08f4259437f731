// SPDX-License-Identifier: MIT

// Package kernel provides positive semi-definite kernels and Gram matrices
// for kernel methods.
//
//   - Polynomial: (a·b + Offset)^Degree.
//   - SqrtDiag: normalizes any kernel to k(a,b)/sqrt(k(a,a)·k(b,b)), so
//     every normalized self-similarity equals 1.
//   - Gram: the rows(A)×rows(B) matrix of kernel values.
package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/matrix"
)

// DefaultOffset is the inhomogeneous term of Polynomial.
const DefaultOffset = 1.0

// ErrInvalidDegree indicates a polynomial degree below 1.
var ErrInvalidDegree = errors.New("kernel: degree must be >= 1")

// Kernel is a similarity function over equal-length feature vectors.
type Kernel interface {
	Eval(a, b []float64) float64
}

// Polynomial is the kernel (a·b + Offset)^Degree.
type Polynomial struct {
	Degree int
	Offset float64
}

// NewPolynomial returns a Polynomial with DefaultOffset.
// Errors: ErrInvalidDegree when degree < 1.
func NewPolynomial(degree int) (Polynomial, error) {
	if degree < 1 {
		return Polynomial{}, fmt.Errorf("NewPolynomial(%d): %w", degree, ErrInvalidDegree)
	}

	return Polynomial{Degree: degree, Offset: DefaultOffset}, nil
}

// Eval implements Kernel.
func (p Polynomial) Eval(a, b []float64) float64 {
	return math.Pow(floats.Dot(a, b)+p.Offset, float64(p.Degree))
}

// SqrtDiag wraps Base with square-root diagonal normalization.
type SqrtDiag struct {
	Base Kernel
}

// Eval implements Kernel. A zero or negative self-similarity yields 0.
func (s SqrtDiag) Eval(a, b []float64) float64 {
	d := s.Base.Eval(a, a) * s.Base.Eval(b, b)
	if d <= 0 {
		return 0
	}

	return s.Base.Eval(a, b) / math.Sqrt(d)
}

// Normalized is shorthand for SqrtDiag{Base: k}.
func Normalized(k Kernel) Kernel { return SqrtDiag{Base: k} }

// Gram returns G[i][j] = k(A_i, B_j) for the rows of A and B.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (different feature widths).
//
// Complexity:
//   - Time O(rows(A)·rows(B)·d) kernel evaluations.
func Gram(k Kernel, A, B *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(A); err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}
	if err := matrix.ValidateNotNil(B); err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}
	if err := matrix.ValidateSameCols(A, B); err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}
	G, err := matrix.NewDense(A.Rows(), B.Rows())
	if err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}
	for i := 0; i < A.Rows(); i++ {
		ai := A.RowView(i)
		for j := 0; j < B.Rows(); j++ {
			if err = G.Set(i, j, k.Eval(ai, B.RowView(j))); err != nil {
				return nil, fmt.Errorf("Gram(%d,%d): %w", i, j, err)
			}
		}
	}

	return G, nil
}
