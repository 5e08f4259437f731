// Package matrix offers the dense numeric storage shared by the learning
// packages of lvlearn.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set and a
//     NaN/Inf ingestion policy.
//   - Row extraction and row-induced copies (Induced) used to slice training
//     folds and feature sets without aliasing.
//   - MatVec, the one linear-algebra kernel the clustering code iterates on.
//   - Column statistics (ColumnMinMax) consumed by feature scaling.
//   - Pairwise Euclidean distances and the thresholded pair export that turns
//     a distance matrix into an undirected edge list.
//
// Everything is deterministic: loops run in fixed i→j order and no map
// iteration leaks into results.
//
// See example_test.go for usage patterns.
package matrix
