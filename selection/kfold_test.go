package selection_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/selection"
)

// TestStratifiedKFold_Partition: folds are disjoint, cover every index,
// and differ in size by at most one.
func TestStratifiedKFold_Partition(t *testing.T) {
	labels := make([]float64, 103)
	for i := range labels {
		labels[i] = float64((i * 37) % 11)
	}
	folds, err := selection.StratifiedKFold{K: 5, Seed: 3463}.Split(labels, 0)
	require.NoError(t, err)
	require.Len(t, folds, 5)

	var all []int
	for _, f := range folds {
		require.True(t, sort.IntsAreSorted(f))
		require.InDelta(t, 103.0/5, float64(len(f)), 1)
		all = append(all, f...)
	}
	sort.Ints(all)
	for i, v := range all {
		require.Equal(t, i, v)
	}
}

// TestStratifiedKFold_PreservesClasses: a 50/50 binary label splits 50/50 in every fold.
func TestStratifiedKFold_PreservesClasses(t *testing.T) {
	labels := make([]float64, 40)
	for i := 20; i < 40; i++ {
		labels[i] = 1
	}
	folds, err := selection.StratifiedKFold{K: 4, Seed: 1}.Split(labels, 0)
	require.NoError(t, err)
	for _, f := range folds {
		ones := 0
		for _, idx := range f {
			ones += int(labels[idx])
		}
		require.Equal(t, 5, ones)
		require.Len(t, f, 10)
	}
}

func TestStratifiedKFold_DeterministicPerRun(t *testing.T) {
	labels := []float64{5, 1, 4, 2, 3, 9, 8, 7, 6, 0}
	s := selection.StratifiedKFold{K: 2, Seed: 42}

	a, err := s.Split(labels, 0)
	require.NoError(t, err)
	b, err := s.Split(labels, 0)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = s.Split(labels, 1)
	require.NoError(t, err)
}

func TestStratifiedKFold_Invalid(t *testing.T) {
	_, err := selection.StratifiedKFold{K: 1}.Split([]float64{1, 2}, 0)
	require.ErrorIs(t, err, selection.ErrInvalidFolds)
	_, err = selection.StratifiedKFold{K: 5}.Split([]float64{1, 2}, 0)
	require.ErrorIs(t, err, selection.ErrInvalidFolds)
}
