// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// terminals lists the formats gonum/plot registers.
var terminals = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true, "tex": true,
}

// Render draws series over chart and writes the image to chart.Output.
//
// Implementation:
//   - Stage 1: validate terminal and output, apply defaults.
//   - Stage 2: build the plot (title, labels, optional grid), add each
//     non-empty series as a plotter.Line or plotter.Scatter, add named
//     series to the legend.
//   - Stage 3: pin axis ranges when Autoscale is off, then encode and write.
//
// Behavior highlights:
//   - Series without points are skipped, so a chart may hold only some of
//     the requested series.
//
// Errors:
//   - ErrNoOutput, ErrUnsupportedTerminal, plotter and file I/O errors (wrapped).
func Render(chart Chart, series ...Series) error {
	if chart.Output == "" {
		return ErrNoOutput
	}
	term := strings.ToLower(chart.Terminal)
	if term == "" {
		term = DefaultTerminal
	}
	if !terminals[term] {
		return fmt.Errorf("Render(%s): %q: %w", chart.Output, chart.Terminal, ErrUnsupportedTerminal)
	}
	w, h := chart.Width, chart.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	if chart.Grid {
		p.Add(plotter.NewGrid())
	}
	for i, s := range series {
		if len(s.XYs) == 0 {
			continue
		}
		if err := addSeries(p, i, s); err != nil {
			return fmt.Errorf("Render(%s): series %q: %w", chart.Output, s.Name, err)
		}
	}
	if !chart.Autoscale {
		if r := chart.XRange; r != nil {
			p.X.Min, p.X.Max = r.Min, r.Max
		}
		if r := chart.YRange; r != nil {
			p.Y.Min, p.Y.Max = r.Min, r.Max
		}
	}

	wt, err := p.WriterTo(w, h, term)
	if err != nil {
		return fmt.Errorf("Render(%s): %w", chart.Output, err)
	}

	return writeFile(chart.Output, wt)
}

// addSeries adds one series to p using palette slot i when no color is set.
func addSeries(p *plot.Plot, i int, s Series) error {
	c := s.Color
	if c == nil {
		c = plotutil.Color(i)
	}
	switch s.Kind {
	case Points:
		sc, err := plotter.NewScatter(s.XYs)
		if err != nil {
			return err
		}
		r := s.Radius
		if r <= 0 {
			r = DefaultRadius
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(r), Shape: draw.CircleGlyph{}}
		p.Add(sc)
		if s.Name != "" {
			p.Legend.Add(s.Name, sc)
		}
	default:
		l, err := plotter.NewLine(s.XYs)
		if err != nil {
			return err
		}
		lw := s.Width
		if lw <= 0 {
			lw = DefaultLineSize
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(lw)
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}

	return nil
}

// writeFile creates path and streams wt into it; a close error is
// reported when the write itself succeeded.
func writeFile(path string, wt io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Render: %w", cerr)
		}
	}()
	if _, err = wt.WriteTo(f); err != nil {
		return fmt.Errorf("Render(%s): %w", path, err)
	}

	return nil
}

// XYsFrom pairs xs with ys.
// Errors: ErrLengthMismatch.
func XYsFrom(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("XYsFrom: %d vs %d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	out := make(plotter.XYs, len(xs))
	for i := range xs {
		out[i].X, out[i].Y = xs[i], ys[i]
	}

	return out, nil
}

// XYsOf converts 2-D points into plot coordinates.
func XYsOf(points [][2]float64) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, pt := range points {
		out[i].X, out[i].Y = pt[0], pt[1]
	}

	return out
}

// ParseColor resolves an SVG color name ("red", "black", …) or #rrggbb.
// Errors: ErrUnknownColor.
func ParseColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if len(name) == 7 && name[0] == '#' {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}

	return nil, fmt.Errorf("ParseColor(%q): %w", name, ErrUnknownColor)
}
