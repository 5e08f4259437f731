// SPDX-License-Identifier: MIT

// Package selection chooses regression hyper-parameters by cross-validation.
//
// What
//
//   - LinearRange and IntRange build the candidate grids (τ values and
//     polynomial degrees); both always yield at least the lower bound.
//   - StratifiedKFold splits sample indices into K folds after a stable sort
//     by label, so every fold sees the whole label distribution. Continuous
//     targets become quantile strata.
//   - CrossValidation trains a fresh model per fold and averages a
//     metrics.Metric over all folds and runs.
//   - GridSearch scores every (τ, degree) pair, records failing trials, and
//     keeps the lowest score (the earlier trial on ties).
//
// Determinism
//
//	Fold shuffles draw from MT19937 seeded with StratifiedKFold.Seed; run r
//	uses a seed derived from (Seed, r), and run 0 uses Seed itself. The same
//	inputs always give the same folds, trials and winner.
//
// Errors
//
//	ErrInvalidFolds, ErrInvalidRange, ErrNoValidTrial, ErrMissingDependency;
//	model and metric errors are wrapped with run and fold context.
package selection
