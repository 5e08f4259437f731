// Package regression fits kernel ridge regression models.
//
// KernelRidge solves (K + τI)·α = y for the training Gram matrix K and
// predicts ŷ(x) = Σ α_i·k(x, x_i). The solve uses a Cholesky factorization
// from gonum/mat and falls back to an LU solve when K + τI is not
// numerically positive definite.
package regression
