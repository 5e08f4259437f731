package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/internal/config"
)

func regressionCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "polyreg"}
	config.RegisterRegressionFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func clusteringCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "clusters"}
	config.RegisterClusteringFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestLoadRegressionDefaults(t *testing.T) {
	cfg, err := config.LoadRegression(regressionCmd(t))
	require.NoError(t, err)
	require.Equal(t, config.DefaultSamples, cfg.Samples)
	require.Equal(t, uint64(config.DefaultSeed), cfg.Seed)
	require.Equal(t, config.DefaultFolds, cfg.Folds)
	require.InDelta(t, 1e-8, cfg.TauMin, 1e-20)
	require.Equal(t, 5, cfg.DegreeMin)
	require.Equal(t, 15, cfg.DegreeMax)
	require.Equal(t, 50, cfg.CurvePoints)
	require.Equal(t, "plot.png", cfg.Output)
	require.Equal(t, "png", cfg.Terminal)
	require.Equal(t, "polynomial regression", cfg.Title)
	require.False(t, cfg.NoNoise)
	require.False(t, cfg.Debug)
}

func TestLoadRegressionPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "polyreg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("samples: 300\nfolds: 3\noutput: file.svg\n"), 0o600))

	t.Setenv("LVLEARN_FOLDS", "4")
	t.Setenv("LVLEARN_DEGREE_MAX", "9")

	cfg, err := config.LoadRegression(regressionCmd(t, "--config", file, "--output", "flag.png"))
	require.NoError(t, err)
	require.Equal(t, 300, cfg.Samples, "file beats default")
	require.Equal(t, 4, cfg.Folds, "env beats file")
	require.Equal(t, 9, cfg.DegreeMax, "env key uses underscores")
	require.Equal(t, "flag.png", cfg.Output, "flag beats file")
}

func TestLoadRegressionMissingFile(t *testing.T) {
	_, err := config.LoadRegression(regressionCmd(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestRegressionValidate(t *testing.T) {
	cases := map[string][]string{
		"folds":           {"--folds", "1"},
		"samples":         {"--samples", "3"},
		"degree":          {"--degree-min", "0"},
		"tau step":        {"--tau-step", "0"},
		"noise NaN":       {"--noise-scale", "NaN"},
		"noise +Inf":      {"--noise-scale", "+Inf"},
		"noise negative":  {"--noise-scale", "-0.1"},
		"tau min NaN":     {"--tau-min", "NaN"},
		"tau max +Inf":    {"--tau-max", "+Inf"},
		"tau step +Inf":   {"--tau-step", "+Inf"},
		"tau step NaN":    {"--tau-step", "NaN"},
		"degree inverted": {"--degree-min", "9", "--degree-max", "8"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadRegression(regressionCmd(t, args...))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestRegressionValidateFromEnv(t *testing.T) {
	t.Setenv("LVLEARN_NOISE_SCALE", "NaN")
	_, err := config.LoadRegression(regressionCmd(t))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadClusteringDefaults(t *testing.T) {
	cfg, err := config.LoadClustering(clusteringCmd(t))
	require.NoError(t, err)
	require.Equal(t, "data", cfg.DataDir)
	require.Len(t, cfg.Files, 7)
	require.Equal(t, filepath.Join("data", "dataset0.csv"), cfg.Paths()[0])
	require.Equal(t, filepath.Join("data", "dataset6.csv"), cfg.Paths()[6])
	require.Equal(t, []string{config.AlgorithmAgglomerative, config.AlgorithmGraphNewman}, cfg.Algorithms)
	require.InDelta(t, 0.5, cfg.Threshold, 0)
	require.Equal(t, "average", cfg.Linkage)
	require.Equal(t, 3, cfg.FallbackClusters)
	require.Equal(t, -1, cfg.LabelColumn)
}

func TestLoadClusteringOverrides(t *testing.T) {
	t.Setenv("LVLEARN_LINKAGE", "single")

	cfg, err := config.LoadClustering(clusteringCmd(t, "--files", "a.csv,b.csv", "--algorithms", "aggl", "--debug"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.csv", "b.csv"}, cfg.Files)
	require.Equal(t, []string{"aggl"}, cfg.Algorithms)
	require.Equal(t, "single", cfg.Linkage)
	require.True(t, cfg.Debug)
}

func TestClusteringValidate(t *testing.T) {
	cases := map[string][]string{
		"threshold":      {"--threshold", "0"},
		"threshold NaN":  {"--threshold", "NaN"},
		"threshold +Inf": {"--threshold", "+Inf"},
		"max-dist NaN":   {"--max-distance", "NaN"},
		"max-dist +Inf":  {"--max-distance", "+Inf"},
		"max-dist < 0":   {"--max-distance", "-1"},
		"linkage":        {"--linkage", "ward"},
		"algorithm":      {"--algorithms", "kmeans"},
		"label":          {"--label-column", "1"},
		"fallback":       {"--fallback-clusters", "0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadClustering(clusteringCmd(t, args...))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
