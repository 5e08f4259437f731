// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/internal/config"
	"github.com/katalvlaran/lvlearn/internal/logging"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/metrics"
	"github.com/katalvlaran/lvlearn/preprocess"
	"github.com/katalvlaran/lvlearn/regression"
	"github.com/katalvlaran/lvlearn/render"
	"github.com/katalvlaran/lvlearn/selection"
)

// Series styling of the regression chart.
const (
	predName  = "pred"
	origName  = "orig"
	predWidth = 2.0
)

// buildModel creates the model for a grid point.
var buildModel selection.Builder = selection.KernelRidgeBuilder

// RegressionReport summarizes one RunRegression call.
type RegressionReport struct {
	Samples  int
	Bounds   dataset.Bounds   // range of the raw inputs
	Search   selection.Result // every grid trial and the winner
	Trained  bool             // the winning model was fitted on all samples
	TrainErr error            // why training failed, nil when Trained
	MSE      float64          // training mean squared error, valid when Trained
	MAE      float64          // training mean absolute error, valid when Trained
	Cond     float64          // condition estimate of the final solve, 0 when well conditioned
	CurveX   []float64        // prediction grid in raw x units, nil when untrained
	CurveY   []float64
	Output   string // rendered chart path
}

// RunRegression executes the kernel ridge regression demo described by cfg
// and writes its tables and metrics to w.
//
// Implementation:
//   - Stage 1: Generate samples, record raw bounds, fit the Rescaler.
//   - Stage 2: grid-search (τ, degree) by stratified k-fold MSE.
//   - Stage 3: fit the winner on all samples, print MSE and MAE, predict
//     LinSpace(min, max, CurvePoints) through the same scaler.
//   - Stage 4: render "pred" (red line) and "orig" (black points).
//
// Errors:
//   - config.ErrInvalidConfig, render.ErrUnknownColor, dataset and preprocess
//     errors, write errors on w, and render errors. Training failures are
//     not returned.
func RunRegression(ctx context.Context, cfg config.Regression, w io.Writer) (RegressionReport, error) {
	log := logging.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return RegressionReport{}, err
	}

	predColor, err := colorOr(cfg.PredColor, config.DefaultPredColor)
	if err != nil {
		return RegressionReport{}, fmt.Errorf("RunRegression: %w", err)
	}
	origColor, err := colorOr(cfg.OrigColor, config.DefaultOrigColor)
	if err != nil {
		return RegressionReport{}, fmt.Errorf("RunRegression: %w", err)
	}

	samples := dataset.Generate(cfg.Samples, cfg.Seed, cfg.NoNoise, dataset.WithNoiseScale(cfg.NoiseScale))
	rep := RegressionReport{Samples: samples.Len(), Output: cfg.Output}
	log.Debugf("generated %d samples (seed %d, noise %t)", samples.Len(), cfg.Seed, !cfg.NoNoise)

	if rep.Bounds, err = dataset.BoundsOf(samples.X); err != nil {
		return rep, fmt.Errorf("RunRegression: %w", err)
	}
	X, err := samples.Matrix()
	if err != nil {
		return rep, fmt.Errorf("RunRegression: %w", err)
	}
	scaler := &preprocess.Rescaler{}
	Xs, err := preprocess.FitTransform(scaler, X)
	if err != nil {
		return rep, fmt.Errorf("RunRegression: %w", err)
	}

	model, err := searchAndFit(ctx, cfg, Xs, samples.Outputs(), w, &rep)
	if err != nil {
		return rep, err
	}
	if model != nil {
		if err = predictCurve(cfg, scaler, model, &rep); err != nil {
			log.Errorf("prediction curve: %v", err)
		}
	}

	if err = renderRegression(cfg, samples, rep, predColor, origColor); err != nil {
		return rep, fmt.Errorf("RunRegression: %w", err)
	}
	log.Infof("wrote %s", cfg.Output)

	return rep, nil
}

// searchAndFit runs the grid search and fits the winner. A nil model with a
// nil error means training failed softly; rep.TrainErr then holds the cause.
func searchAndFit(ctx context.Context, cfg config.Regression, Xs *matrix.Dense, y []float64, w io.Writer, rep *RegressionReport) (regression.Regressor, error) {
	log := logging.FromContext(ctx)

	taus, err := selection.LinearRange(cfg.TauMin, cfg.TauMax, cfg.TauStep)
	if err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}
	degrees, err := selection.IntRange(cfg.DegreeMin, cfg.DegreeMax, cfg.DegreeStep)
	if err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}
	gs := selection.GridSearch{
		CV: selection.CrossValidation{
			Splitter: selection.StratifiedKFold{K: cfg.Folds, Seed: cfg.Seed},
			Metric:   metrics.MeanSquaredError,
			Runs:     cfg.Runs,
		},
		Taus:    taus,
		Degrees: degrees,
	}
	log.Debugf("grid search over %d taus x %d degrees, %d folds", len(taus), len(degrees), cfg.Folds)

	rep.Search, err = gs.Search(buildModel, Xs, y)
	for _, tr := range rep.Search.Trials {
		if tr.Err != nil {
			log.Debugf("trial %v failed: %v", tr.Params, tr.Err)
		}
	}
	if perr := printTrials(w, rep.Search); perr != nil {
		return nil, fmt.Errorf("RunRegression: %w", perr)
	}
	if err != nil {
		rep.TrainErr = err
		log.Errorf("model selection failed: %v", err)

		return nil, nil
	}
	if _, err = fmt.Fprintf(w, "best parameters (cv mse %s):\n%s\n", fmtFloat(rep.Search.BestScore), rep.Search.Best); err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}

	model, err := buildModel(rep.Search.Best)
	if err == nil {
		err = model.Fit(Xs, y)
	}
	if err != nil {
		rep.TrainErr = err
		log.Errorf("training failed: %v", err)

		return nil, nil
	}
	rep.Trained = true
	if c, ok := model.(interface{ Condition() float64 }); ok && c.Condition() > 0 {
		rep.Cond = c.Condition()
		log.Debugf("final fit accepted an ill-conditioned solve (cond %g)", rep.Cond)
	}

	pred, err := model.Predict(Xs)
	if err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}
	if rep.MSE, err = metrics.MeanSquaredError(pred, y); err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}
	if rep.MAE, err = metrics.MeanAbsoluteError(pred, y); err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}
	if _, err = fmt.Fprintf(w, "mse = %s\nmae = %s\n", fmtFloat(rep.MSE), fmtFloat(rep.MAE)); err != nil {
		return nil, fmt.Errorf("RunRegression: %w", err)
	}

	return model, nil
}

// predictCurve evaluates model on CurvePoints evenly spaced raw inputs.
func predictCurve(cfg config.Regression, scaler preprocess.Transformer, model regression.Regressor, rep *RegressionReport) error {
	xs, err := dataset.LinSpace(rep.Bounds.Min, rep.Bounds.Max, cfg.CurvePoints)
	if err != nil {
		return err
	}
	grid, err := matrix.NewColumn(xs)
	if err != nil {
		return err
	}
	scaled, err := scaler.Transform(grid)
	if err != nil {
		return err
	}
	ys, err := model.Predict(scaled)
	if err != nil {
		return err
	}
	rep.CurveX, rep.CurveY = xs, ys

	return nil
}

func renderRegression(cfg config.Regression, samples dataset.Samples, rep RegressionReport, predColor, origColor color.Color) error {
	orig, err := render.XYsFrom(samples.X, samples.Y)
	if err != nil {
		return err
	}
	series := make([]render.Series, 0, 2)
	if rep.CurveX != nil {
		pred, err := render.XYsFrom(rep.CurveX, rep.CurveY)
		if err != nil {
			return err
		}
		series = append(series, render.Series{Name: predName, Kind: render.Lines, Color: predColor, Width: predWidth, XYs: pred})
	}
	series = append(series, render.Series{Name: origName, Kind: render.Points, Color: origColor, XYs: orig})

	chart := render.Chart{
		Terminal:  cfg.Terminal,
		Output:    cfg.Output,
		Title:     cfg.Title,
		XLabel:    "x",
		YLabel:    "y",
		Autoscale: true,
		Grid:      true,
	}

	return render.Render(chart, series...)
}

// colorOr parses name, falling back to def when name is empty.
func colorOr(name, def string) (color.Color, error) {
	if name == "" {
		name = def
	}

	return render.ParseColor(name)
}
