package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Algorithm names accepted by the clustering demo.
const (
	AlgorithmAgglomerative = "aggl"
	AlgorithmGraphNewman   = "graph-newman"
)

// Defaults of the clustering demo.
const (
	DefaultDataDir          = "data"
	DefaultDatasetCount     = 7
	DefaultThreshold        = 0.5
	DefaultLinkage          = "average"
	DefaultFallbackClusters = 3
	DefaultLabelColumn      = -1
)

// DefaultFiles returns dataset0.csv … dataset6.csv.
func DefaultFiles() []string {
	files := make([]string, DefaultDatasetCount)
	for i := range files {
		files[i] = fmt.Sprintf("dataset%d.csv", i)
	}

	return files
}

// Clustering configures the clustering demo.
type Clustering struct {
	DataDir          string   `mapstructure:"data-dir"`
	Files            []string `mapstructure:"files"`
	Algorithms       []string `mapstructure:"algorithms"`
	Threshold        float64  `mapstructure:"threshold"`
	Linkage          string   `mapstructure:"linkage"`
	MaxDistance      float64  `mapstructure:"max-distance"`
	FallbackClusters int      `mapstructure:"fallback-clusters"`
	LabelColumn      int      `mapstructure:"label-column"`
	OutputDir        string   `mapstructure:"output-dir"`
	Terminal         string   `mapstructure:"terminal"`
	Debug            bool     `mapstructure:"debug"`
}

// RegisterClusteringFlags declares the clustering flags on cmd.
func RegisterClusteringFlags(cmd *cobra.Command) {
	registerShared(cmd)
	f := cmd.Flags()
	f.String("data-dir", DefaultDataDir, "directory holding the dataset files")
	f.StringSlice("files", DefaultFiles(), "dataset file names inside data-dir")
	f.StringSlice("algorithms", []string{AlgorithmAgglomerative, AlgorithmGraphNewman}, "algorithms to run")
	f.Float64("threshold", DefaultThreshold, "graph edge distance threshold (strict)")
	f.String("linkage", DefaultLinkage, "agglomerative linkage: average, single, complete")
	f.Float64("max-distance", 0, "stop agglomerative merging beyond this distance (0 disables)")
	f.Int("fallback-clusters", DefaultFallbackClusters, "cluster count when labels have fewer than two values")
	f.Int("label-column", DefaultLabelColumn, "label column index (-1 for the last column)")
	f.String("output-dir", ".", "directory for the rendered charts")
}

// LoadClustering resolves and validates the clustering settings of cmd.
func LoadClustering(cmd *cobra.Command) (Clustering, error) {
	var cfg Clustering
	if err := load(cmd, &cfg); err != nil {
		return Clustering{}, err
	}

	return cfg, cfg.Validate()
}

// Paths returns every dataset path in configured order.
func (c Clustering) Paths() []string {
	out := make([]string, len(c.Files))
	for i, f := range c.Files {
		out[i] = filepath.Join(c.DataDir, f)
	}

	return out
}

// Validate checks every field against its documented range.
func (c Clustering) Validate() error {
	if !finite(c.Threshold) || c.Threshold <= 0 {
		return invalid("threshold", "%g is not a finite value > 0", c.Threshold)
	}
	if !finite(c.MaxDistance) || c.MaxDistance < 0 {
		return invalid("max-distance", "%g is not a finite value >= 0", c.MaxDistance)
	}
	if c.FallbackClusters < 1 {
		return invalid("fallback-clusters", "%d < 1", c.FallbackClusters)
	}
	if c.LabelColumn != -1 && c.LabelColumn < 2 {
		return invalid("label-column", "%d is a coordinate column", c.LabelColumn)
	}
	switch c.Linkage {
	case "average", "single", "complete":
	default:
		return invalid("linkage", "%q", c.Linkage)
	}
	for _, a := range c.Algorithms {
		if a != AlgorithmAgglomerative && a != AlgorithmGraphNewman {
			return invalid("algorithms", "%q", a)
		}
	}

	return nil
}
