// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the
// distance→edge export. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry of distance matrices).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultEdgeThreshold admits a pair as an edge when dist[i,j] < threshold.
	DefaultEdgeThreshold = 0.5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEdgeThresholdInvalid = "matrix: WithEdgeThreshold: threshold must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	edgeThreshold float64 // DefaultEdgeThreshold
}

// WithEpsilon sets the tolerance used by structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEdgeThreshold sets the strict upper bound for ThresholdPairs: a pair
// (i,j) is exported only when dist[i,j] < t.
// Panics when t is NaN or ±Inf.
// Complexity: O(1).
func WithEdgeThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicEdgeThresholdInvalid)
	}

	return func(o *Options) { o.edgeThreshold = t }
}

// gatherOptions resolves setters against the documented defaults;
// last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		edgeThreshold: DefaultEdgeThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
