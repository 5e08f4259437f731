package config

import "github.com/spf13/cobra"

// Defaults of the regression demo.
const (
	DefaultSamples     = 1000
	DefaultSeed        = 3463
	DefaultNoiseScale  = 0.3
	DefaultFolds       = 5
	DefaultRuns        = 1
	DefaultTauMin      = 1e-8
	DefaultTauMax      = 1e-6
	DefaultTauStep     = 1e-6
	DefaultDegreeMin   = 5
	DefaultDegreeMax   = 15
	DefaultDegreeStep  = 1
	DefaultCurvePoints = 50
	DefaultPlotFile    = "plot.png"
	DefaultPlotTitle   = "polynomial regression"
	DefaultPredColor   = "red"
	DefaultOrigColor   = "black"
)

// Regression configures the kernel ridge regression demo.
type Regression struct {
	Samples     int     `mapstructure:"samples"`
	Seed        uint64  `mapstructure:"seed"`
	NoNoise     bool    `mapstructure:"no-noise"`
	NoiseScale  float64 `mapstructure:"noise-scale"`
	Folds       int     `mapstructure:"folds"`
	Runs        int     `mapstructure:"runs"`
	TauMin      float64 `mapstructure:"tau-min"`
	TauMax      float64 `mapstructure:"tau-max"`
	TauStep     float64 `mapstructure:"tau-step"`
	DegreeMin   int     `mapstructure:"degree-min"`
	DegreeMax   int     `mapstructure:"degree-max"`
	DegreeStep  int     `mapstructure:"degree-step"`
	CurvePoints int     `mapstructure:"curve-points"`
	Output      string  `mapstructure:"output"`
	Terminal    string  `mapstructure:"terminal"`
	Title       string  `mapstructure:"title"`
	PredColor   string  `mapstructure:"pred-color"`
	OrigColor   string  `mapstructure:"orig-color"`
	Debug       bool    `mapstructure:"debug"`
}

// RegisterRegressionFlags declares the regression flags on cmd.
func RegisterRegressionFlags(cmd *cobra.Command) {
	registerShared(cmd)
	f := cmd.Flags()
	f.Int("samples", DefaultSamples, "number of generated samples")
	f.Uint64("seed", DefaultSeed, "random seed")
	f.Bool("no-noise", false, "generate noise-free targets")
	f.Float64("noise-scale", DefaultNoiseScale, "noise standard deviation multiplier")
	f.Int("folds", DefaultFolds, "cross-validation folds")
	f.Int("runs", DefaultRuns, "cross-validation repetitions")
	f.Float64("tau-min", DefaultTauMin, "smallest ridge strength")
	f.Float64("tau-max", DefaultTauMax, "largest ridge strength")
	f.Float64("tau-step", DefaultTauStep, "ridge strength step")
	f.Int("degree-min", DefaultDegreeMin, "smallest polynomial degree")
	f.Int("degree-max", DefaultDegreeMax, "largest polynomial degree")
	f.Int("degree-step", DefaultDegreeStep, "polynomial degree step")
	f.Int("curve-points", DefaultCurvePoints, "points on the prediction curve")
	f.String("output", DefaultPlotFile, "plot file")
	f.String("title", DefaultPlotTitle, "plot title")
	f.String("pred-color", DefaultPredColor, "prediction line color (SVG name or #rrggbb)")
	f.String("orig-color", DefaultOrigColor, "sample point color (SVG name or #rrggbb)")
}

// LoadRegression resolves and validates the regression settings of cmd.
func LoadRegression(cmd *cobra.Command) (Regression, error) {
	var cfg Regression
	if err := load(cmd, &cfg); err != nil {
		return Regression{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks every field against its documented range.
func (c Regression) Validate() error {
	switch {
	case c.Folds < 2:
		return invalid("folds", "%d < 2", c.Folds)
	case c.Samples < c.Folds:
		return invalid("samples", "%d fewer than %d folds", c.Samples, c.Folds)
	case !finite(c.NoiseScale) || c.NoiseScale < 0:
		return invalid("noise-scale", "%g is not a finite value >= 0", c.NoiseScale)
	case !finite(c.TauMin, c.TauMax, c.TauStep) || c.TauMin < 0 || c.TauMax < c.TauMin || c.TauStep <= 0:
		return invalid("tau", "range [%g, %g] step %g", c.TauMin, c.TauMax, c.TauStep)
	case c.DegreeMin < 1 || c.DegreeMax < c.DegreeMin || c.DegreeStep < 1:
		return invalid("degree", "range [%d, %d] step %d", c.DegreeMin, c.DegreeMax, c.DegreeStep)
	case c.CurvePoints < 1:
		return invalid("curve-points", "%d < 1", c.CurvePoints)
	case c.Output == "":
		return invalid("output", "empty")
	}

	return nil
}
