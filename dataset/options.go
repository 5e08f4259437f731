// SPDX-License-Identifier: MIT
// Package: lvlearn/dataset
//
// options.go: functional options for Generate and LoadCSV.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators and loaders themselves never panic.
//   • No hidden globals; everything flows through config.

package dataset

import "math"

const (
	// DefaultNoiseScale multiplies the standard normal noise draw.
	DefaultNoiseScale = 0.3

	// LastColumn selects the right-most column as the label column.
	LastColumn = -1
)

// config is the resolved option set shared by Generate and LoadCSV.
type config struct {
	noiseScale  float64 // σ ≥ 0
	labelColumn int     // LastColumn or an explicit index ≥ 2
}

// Option customizes Generate or LoadCSV. Options that do not apply to a
// function are ignored by it.
type Option func(*config)

// WithNoiseScale overrides the σ multiplying each noise draw.
// Panics when σ is negative, NaN or ±Inf.
func WithNoiseScale(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("dataset: WithNoiseScale: sigma must be finite and >= 0")
	}

	return func(c *config) { c.noiseScale = sigma }
}

// WithLabelColumn selects the CSV label column (LastColumn for the last one).
// Panics when col is neither LastColumn nor ≥ 2 (columns 0 and 1 are coordinates).
func WithLabelColumn(col int) Option {
	if col != LastColumn && col < 2 {
		panic("dataset: WithLabelColumn: column must be LastColumn or >= 2")
	}

	return func(c *config) { c.labelColumn = col }
}

// newConfig resolves opts over the defaults; last writer wins.
func newConfig(opts ...Option) config {
	c := config{
		noiseScale:  DefaultNoiseScale,
		labelColumn: LastColumn,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
