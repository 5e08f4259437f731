// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sentinel errors for rendering.
var (
	// ErrUnsupportedTerminal indicates an image format the renderer cannot write.
	ErrUnsupportedTerminal = errors.New("render: unsupported terminal")

	// ErrNoOutput indicates a chart without an output path.
	ErrNoOutput = errors.New("render: output path is empty")

	// ErrUnknownColor indicates a color name that is neither an SVG name nor #rrggbb.
	ErrUnknownColor = errors.New("render: unknown color")

	// ErrLengthMismatch indicates x and y slices of different lengths.
	ErrLengthMismatch = errors.New("render: x/y length mismatch")
)

// Kind selects how a series is drawn.
type Kind int

const (
	// Lines connects consecutive points.
	Lines Kind = iota
	// Points draws a glyph at every point.
	Points
)

// Defaults applied by Render to zero-valued fields.
const (
	DefaultTerminal           = "png"
	DefaultWidth    vg.Length = 480 // points; 640px at 96 dpi
	DefaultHeight   vg.Length = 360 // points; 480px at 96 dpi
	DefaultLineSize           = 1.0 // points
	DefaultRadius             = 2.5 // points
)

// Range pins one axis to [Min, Max].
type Range struct {
	Min, Max float64
}

// Chart is the canvas configuration for one output file.
type Chart struct {
	Terminal  string    // image format: png, svg, pdf, eps, jpg, jpeg, tif, tiff, tex
	Output    string    // destination file path
	Title     string    // chart title
	XLabel    string    // x axis label
	YLabel    string    // y axis label
	Autoscale bool      // fit axes to data; explicit ranges below are ignored when true
	Grid      bool      // draw major grid lines
	Width     vg.Length // zero means DefaultWidth
	Height    vg.Length // zero means DefaultHeight
	XRange    *Range    // pinned x range when Autoscale is false
	YRange    *Range    // pinned y range when Autoscale is false
}

// Series is one named data set.
type Series struct {
	Name   string      // legend entry; empty names stay out of the legend
	Kind   Kind        // Lines or Points
	Color  color.Color // nil picks a palette color by series index
	Width  float64     // line width in points (Lines); zero means DefaultLineSize
	Radius float64     // glyph radius in points (Points); zero means DefaultRadius
	XYs    plotter.XYs
}
