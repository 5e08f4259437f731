// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/lvlearn/selection"
)

// fmtFloat keeps small ridge strengths readable.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// printTrials writes one row per grid point; the winner is marked with "*".
func printTrials(w io.Writer, res selection.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Tau", "Degree", "MSE", "Best", "Error"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, tr := range res.Trials {
		best, score, msg := "", fmtFloat(tr.Score), ""
		if tr.Err != nil {
			score, msg = "-", tr.Err.Error()
		} else if tr.Params == res.Best {
			best = "*"
		}
		data = append(data, []string{fmtFloat(tr.Tau), strconv.Itoa(tr.Degree), score, best, msg})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

// printClusterSummary writes one row per (dataset, algorithm).
func printClusterSummary(w io.Writer, results []DatasetResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Dataset", "Points", "K", "Components", "Algorithm", "Clusters", "Modularity", "Output", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range results {
		if r.Skipped {
			data = append(data, []string{r.Name, "-", "-", "-", "-", "-", "-", "-", "skipped"})
			continue
		}
		if len(r.Runs) == 0 {
			data = append(data, []string{r.Name, strconv.Itoa(r.Points), strconv.Itoa(r.K), "-", "-", "-", "-", "-", status(r.Err)})
			continue
		}
		for _, run := range r.Runs {
			data = append(data, []string{
				r.Name,
				strconv.Itoa(r.Points),
				strconv.Itoa(r.K),
				strconv.Itoa(r.Components),
				run.Algorithm,
				strconv.Itoa(run.Clusters),
				fmt.Sprintf("%.4f", run.Modularity),
				run.Output,
				status(run.Err),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

func status(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}

	return "ok"
}
