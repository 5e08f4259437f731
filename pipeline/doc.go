// SPDX-License-Identifier: MIT

// Package pipeline wires the library packages into the two demo programs.
//
// RunRegression generates noisy cosine samples, rescales them, grid-searches
// a normalized polynomial kernel ridge model by stratified k-fold
// cross-validation, reports the winner with its training error and renders
// the fitted curve over the data.
//
// RunClustering loads CSV point sets, infers the cluster count from their
// labels, clusters every set with each configured algorithm and renders one
// chart per (dataset, algorithm).
//
// Both pipelines take their logger from the context (internal/logging) and
// write human-readable tables to the supplied writer.
//
// Failure policy:
//   - Regression: a training failure is logged and recorded in the report;
//     metrics and the prediction curve are skipped but the samples are still
//     rendered. Only configuration and rendering errors are returned.
//   - Clustering: a missing dataset file is skipped with a debug message;
//     any other per-dataset error is logged and recorded in that dataset's
//     result, and the remaining datasets still run.
package pipeline
