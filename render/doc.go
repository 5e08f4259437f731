// Package render draws charts of overlaid line and point series into image
// files using gonum.org/v1/plot.
//
// A Chart describes the canvas (terminal format, output file, title,
// labels, axis ranges, grid); each Series is one named data set drawn
// either as a connected line or as point glyphs. Render writes one file
// per call.
package render
