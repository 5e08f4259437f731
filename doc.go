// Package lvlearn is a small machine-learning playground in pure Go:
// kernel regression with model selection, and point clustering with both
// a hierarchical and a graph-modularity method, each rendered to an image.
//
// 🚀 What is inside?
//
//	• Data: reproducible noisy cosine samples, LinSpace grids, CSV point tables
//	• Preprocessing: min/max Rescaler
//	• Kernels: inhomogeneous polynomial with SqrtDiag normalization, Gram matrices
//	• Regression: kernel ridge regression (Cholesky, LU fallback)
//	• Model selection: stratified k-fold cross-validation and (τ, degree) grid search
//	• Clustering: agglomerative (average/single/complete linkage) and Newman's
//	  leading-eigenvector communities over a distance-threshold graph
//	• Rendering: line and point charts through gonum/plot
//
// Everything is organized under focused subpackages:
//
//	core/         thread-safe undirected Graph used by the Newman clustering
//	matrix/       dense matrices, pairwise distances, threshold pairs, MatVec
//	dataset/      sample generation, LinSpace, CSV loading, label statistics
//	preprocess/   feature rescaling
//	kernel/       kernel functions and Gram matrices
//	metrics/      MSE and MAE
//	regression/   KernelRidge
//	selection/    ranges, StratifiedKFold, CrossValidation, GridSearch
//	cluster/      Agglomerative, Newman, GraphNewman, Group, Modularity
//	render/       Chart and Series rendering to png/svg/pdf/…
//	pipeline/     the two demo pipelines
//
// Two runnable programs sit in examples/:
//
//	go run ./examples/polyreg    # writes plot.png
//	go run ./examples/clusters   # reads data/dataset0..6.csv
//
// Quick ASCII example of the threshold graph behind GraphNewman:
//
//	    a───b        e───f
//	    │ ╲ │        │   │
//	    c───d        g───h
//
//	two groups of points closer than the threshold become two communities.
package lvlearn
