// SPDX-License-Identifier: MIT
// Package: lvlearn/dataset
//
// impl_csv.go: numeric CSV tables for the clustering demo.
//
// Contract:
//   • Columns 0 and 1 are coordinates; one further column holds the label.
//   • A first row that does not parse as numbers is a header and is skipped.
//   • Blank lines are ignored; ragged rows and bad cells fail with context.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Table is a labeled 2-D point set read from a CSV file.
type Table struct {
	Name   string        // file base name without extension
	Points *matrix.Dense // n×2 coordinates
	Labels []float64     // one label per row of Points
}

// Len returns the number of rows in the table.
func (t Table) Len() int { return len(t.Labels) }

// LoadCSV opens path and parses it with ReadCSV. Table.Name is the base
// name of path without its extension.
//
// Errors:
//   - the *os.PathError from opening the file (errors.Is(err, fs.ErrNotExist)
//     lets callers skip missing datasets);
//   - every ReadCSV error, wrapped with the path.
func LoadCSV(path string, opts ...Option) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	base := filepath.Base(path)
	t, err := ReadCSV(f, strings.TrimSuffix(base, filepath.Ext(base)), opts...)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadCSV parses a comma-separated numeric table from r.
//
// Implementation:
//   - Stage 1: read records one by one (encoding/csv skips blank lines).
//   - Stage 2: the first record that fails to parse is dropped as a header;
//     later failures are ErrParse with line and column.
//   - Stage 3: split each row into (x, y) and the selected label column.
//
// Errors:
//   - ErrParse, ErrRaggedRow, ErrTooFewColumns, ErrLabelColumn, ErrNoRows.
//
// Complexity:
//   - Time O(rows·cols), Space O(rows).
func ReadCSV(r io.Reader, name string, opts ...Option) (Table, error) {
	cfg := newConfig(opts...)
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // width is checked here to report ErrRaggedRow
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var (
		coords []float64
		labels []float64
		width  int
		label  int
		first  = true
	)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, wrapf("ReadCSV", err)
		}
		line, _ := reader.FieldPos(0)

		row, col, perr := parseRow(rec)
		if perr != nil {
			if first {
				first = false // header
				continue
			}

			return Table{}, wrapf("ReadCSV", fmt.Errorf("line %d column %d: %w", line, col+1, perr))
		}
		if width == 0 {
			first = false
			width = len(row)
			if width < 3 {
				return Table{}, wrapf("ReadCSV", fmt.Errorf("line %d has %d columns: %w", line, width, ErrTooFewColumns))
			}
			label = cfg.labelColumn
			if label == LastColumn {
				label = width - 1
			}
			if label >= width {
				return Table{}, wrapf("ReadCSV", fmt.Errorf("column %d of %d: %w", label, width, ErrLabelColumn))
			}
		}
		if len(row) != width {
			return Table{}, wrapf("ReadCSV", fmt.Errorf("line %d has %d columns, want %d: %w", line, len(row), width, ErrRaggedRow))
		}
		coords = append(coords, row[0], row[1])
		labels = append(labels, row[label])
	}
	if len(labels) == 0 {
		return Table{}, wrapf("ReadCSV", ErrNoRows)
	}

	points, err := matrix.NewDenseFrom(len(labels), 2, coords)
	if err != nil {
		return Table{}, wrapf("ReadCSV", err)
	}

	return Table{Name: name, Points: points, Labels: labels}, nil
}

// parseRow converts every cell to float64; on failure it reports the column.
func parseRow(rec []string) ([]float64, int, error) {
	row := make([]float64, len(rec))
	for j, cell := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, j, fmt.Errorf("%q: %w", cell, ErrParse)
		}
		row[j] = v
	}

	return row, 0, nil
}
