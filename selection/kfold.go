// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"
	"sort"
)

// Splitter partitions sample indices into folds. run selects an
// independent shuffle for repeated cross-validation (run 0 is the base seed).
type Splitter interface {
	Split(labels []float64, run int) ([][]int, error)
}

// StratifiedKFold deals samples into K folds so that every fold sees the
// same spread of label values.
//
// Indices are stable-sorted by label and consumed in consecutive blocks
// of K; each block is shuffled and dealt one index per fold. Equal labels
// are contiguous, so class proportions carry over to every fold; for
// continuous labels each block is a quantile stratum.
type StratifiedKFold struct {
	K    int
	Seed uint64
}

var _ Splitter = StratifiedKFold{}

// Split returns K disjoint folds covering 0..len(labels)-1, each sorted
// ascending. Fold sizes differ by at most one.
//
// Errors:
//   - ErrInvalidFolds when K < 2 or len(labels) < K.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func (s StratifiedKFold) Split(labels []float64, run int) ([][]int, error) {
	n := len(labels)
	if s.K < 2 || n < s.K {
		return nil, fmt.Errorf("StratifiedKFold.Split: k=%d n=%d: %w", s.K, n, ErrInvalidFolds)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return labels[order[a]] < labels[order[b]] })

	rng := rngFromSeed(deriveSeed(s.Seed, uint64(run)))
	folds := make([][]int, s.K)
	for start := 0; start < n; start += s.K {
		end := start + s.K
		if end > n {
			end = n
		}
		block := order[start:end]
		rng.Shuffle(len(block), func(i, j int) { block[i], block[j] = block[j], block[i] })
		if len(block) == s.K {
			for f, idx := range block {
				folds[f] = append(folds[f], idx)
			}
			continue
		}
		// Partial tail: spread over randomly chosen folds.
		for t, f := range rng.Perm(s.K)[:len(block)] {
			folds[f] = append(folds[f], block[t])
		}
	}
	for _, f := range folds {
		sort.Ints(f)
	}

	return folds, nil
}

// complement returns 0..n-1 without the members of fold (fold sorted).
func complement(n int, fold []int) []int {
	out := make([]int, 0, n-len(fold))
	j := 0
	for i := 0; i < n; i++ {
		if j < len(fold) && fold[j] == i {
			j++
			continue
		}
		out = append(out, i)
	}

	return out
}
