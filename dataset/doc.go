// Package dataset produces and loads the sample sets consumed by the
// regression and clustering pipelines.
//
// What it provides:
//
//   - Generate: a reproducible noisy cosine sample set y = cos(πx) + σ·ε,
//     driven by a seeded MT19937 stream (gonum mathext/prng) through a
//     standard normal (gonum stat/distuv).
//   - LinSpace: n evenly stepped values whose last slot is pinned to the end
//     point, used for smooth prediction curves.
//   - Bounds / BoundsOf: the observed [min, max] of a coordinate.
//   - LoadCSV: a numeric CSV table split into 2-D points and a label column,
//     plus DistinctLabels / ClusterCount for inferring the cluster count.
//
// Everything is deterministic: the same (n, seed) yields the same samples,
// and a sample set is never mutated after construction (accessors copy).
package dataset
