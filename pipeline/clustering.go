// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/katalvlaran/lvlearn/bfs"
	"github.com/katalvlaran/lvlearn/cluster"
	"github.com/katalvlaran/lvlearn/core"
	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/internal/config"
	"github.com/katalvlaran/lvlearn/internal/logging"
	"github.com/katalvlaran/lvlearn/render"
)

// ErrUnknownAlgorithm indicates an algorithm name no factory knows.
var ErrUnknownAlgorithm = errors.New("pipeline: unknown clustering algorithm")

// AssignerFactory returns the assigner for algorithm given the cluster count
// inferred from the dataset labels. Algorithms that find the count on their
// own may ignore k.
type AssignerFactory func(algorithm string, k int) (cluster.Assigner, error)

// DefaultAssigners builds agglomerative and graph-Newman assigners from cfg.
func DefaultAssigners(cfg config.Clustering) AssignerFactory {
	return func(algorithm string, k int) (cluster.Assigner, error) {
		switch algorithm {
		case config.AlgorithmAgglomerative:
			linkage, ok := cluster.ParseLinkage(cfg.Linkage)
			if !ok {
				return nil, fmt.Errorf("linkage %q: %w", cfg.Linkage, config.ErrInvalidConfig)
			}

			return cluster.Agglomerative{K: k, Linkage: linkage, MaxDistance: cfg.MaxDistance}, nil
		case config.AlgorithmGraphNewman:
			return cluster.GraphNewman{Threshold: cfg.Threshold}, nil
		default:
			return nil, fmt.Errorf("%q: %w", algorithm, ErrUnknownAlgorithm)
		}
	}
}

// AlgorithmRun is the outcome of one algorithm on one dataset.
type AlgorithmRun struct {
	Algorithm  string
	Labels     []int   // cluster id per point
	Clusters   int     // distinct ids in Labels
	Modularity float64 // Q of Labels over the threshold graph
	Output     string  // chart path
	Err        error
}

// DatasetResult is the outcome of one configured dataset path.
type DatasetResult struct {
	Path       string
	Name       string
	Skipped    bool // the file does not exist
	Points     int
	K          int // cluster count inferred from labels
	Components int // connected components of the threshold graph
	Runs       []AlgorithmRun
	Err        error // load error; per-algorithm errors live in Runs
}

// RunClustering clusters every dataset of cfg with every configured
// algorithm, renders one chart per pair and writes a summary table to w.
// A nil factory means DefaultAssigners(cfg).
//
// Implementation:
//   - For each path: LoadCSV (missing → skipped), k = ClusterCount(labels,
//     FallbackClusters), build the threshold graph once for modularity.
//   - For each algorithm: Assign, Group, Render "<name>-<algorithm>.<terminal>".
//
// Errors:
//   - config.ErrInvalidConfig and write errors on w. Dataset errors are
//     recorded in the results, never returned.
func RunClustering(ctx context.Context, cfg config.Clustering, factory AssignerFactory, w io.Writer) ([]DatasetResult, error) {
	log := logging.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if factory == nil {
		factory = DefaultAssigners(cfg)
	}
	terminal := cfg.Terminal
	if terminal == "" {
		terminal = render.DefaultTerminal
	}

	results := make([]DatasetResult, 0, len(cfg.Files))
	for _, path := range cfg.Paths() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := DatasetResult{Path: path}
		table, err := dataset.LoadCSV(path, dataset.WithLabelColumn(cfg.LabelColumn))
		if err != nil {
			res.Name = baseName(path)
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("skipping %s: %v", path, err)
				res.Skipped = true
			} else {
				log.Errorf("loading %s: %v", path, err)
				res.Err = err
			}
			results = append(results, res)
			continue
		}
		res.Name = table.Name
		res.Points = table.Len()
		res.K = dataset.ClusterCount(table.Labels, cfg.FallbackClusters)
		log.Infof("%s: %d points, %d clusters", table.Name, res.Points, res.K)

		graph, err := cluster.GraphNewman{Threshold: cfg.Threshold}.Graph(table.Points)
		if err != nil {
			log.Debugf("%s: no threshold graph, modularity unavailable: %v", table.Name, err)
			graph = nil
		} else if comps, cerr := bfs.Components(graph); cerr == nil {
			res.Components = len(comps)
		}
		for _, algorithm := range cfg.Algorithms {
			run := AlgorithmRun{
				Algorithm: algorithm,
				Output:    filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s.%s", table.Name, algorithm, terminal)),
			}
			run.Err = clusterOne(factory, graph, table, res.K, terminal, &run)
			if run.Err != nil {
				log.Errorf("%s/%s: %v", table.Name, algorithm, run.Err)
			} else {
				log.Debugf("%s/%s: %d clusters, Q=%.4f", table.Name, algorithm, run.Clusters, run.Modularity)
			}
			res.Runs = append(res.Runs, run)
		}
		results = append(results, res)
	}

	if err := printClusterSummary(w, results); err != nil {
		return results, fmt.Errorf("RunClustering: %w", err)
	}

	return results, nil
}

// clusterOne assigns, scores and renders a single (dataset, algorithm) pair.
func clusterOne(factory AssignerFactory, graph *core.Graph, table dataset.Table, k int, terminal string, run *AlgorithmRun) error {
	assigner, err := factory(run.Algorithm, k)
	if err != nil {
		return err
	}
	labels, err := assigner.Assign(table.Points)
	if err != nil {
		return err
	}
	run.Labels = labels

	groups, err := cluster.Group(table.Points, labels)
	if err != nil {
		return err
	}
	run.Clusters = len(groups)

	if graph != nil {
		if q, qerr := cluster.Modularity(graph, labels); qerr == nil {
			run.Modularity = q
		}
	}

	return renderClusters(table.Name, run.Algorithm, terminal, run.Output, groups)
}

func renderClusters(name, algorithm, terminal, output string, groups [][][2]float64) error {
	series := make([]render.Series, 0, len(groups))
	for c, pts := range groups {
		series = append(series, render.Series{
			Name: fmt.Sprintf("cluster %d", c),
			Kind: render.Points,
			XYs:  render.XYsOf(pts),
		})
	}
	chart := render.Chart{
		Terminal:  terminal,
		Output:    output,
		Title:     fmt.Sprintf("%s: %s", name, algorithm),
		XLabel:    "x",
		YLabel:    "y",
		Autoscale: true,
		Grid:      true,
	}

	return render.Render(chart, series...)
}

// baseName strips directory and extension the way dataset.LoadCSV names tables.
func baseName(path string) string {
	base := filepath.Base(path)

	return base[:len(base)-len(filepath.Ext(base))]
}
