// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/dataset"
)

func TestLinSpace(t *testing.T) {
	xs, err := dataset.LinSpace(0, 10, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 4, 6, 10}, xs)

	for _, n := range []int{2, 3, 7, 50} {
		xs, err = dataset.LinSpace(-1.3, 2.7, n)
		require.NoError(t, err)
		require.Len(t, xs, n)
		require.Equal(t, -1.3, xs[0])
		require.Equal(t, 2.7, xs[n-1], "last value must be exactly e for n=%d", n)
	}

	// Descending ranges are allowed.
	xs, err = dataset.LinSpace(4, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0}, xs)

	xs, err = dataset.LinSpace(1, 5, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{5}, xs)

	_, err = dataset.LinSpace(0, 1, 0)
	require.ErrorIs(t, err, dataset.ErrTooFewPoints)
}

func TestBoundsOf(t *testing.T) {
	b, err := dataset.BoundsOf([]float64{0.5, -2, 3.25, 1})
	require.NoError(t, err)
	require.Equal(t, dataset.Bounds{Min: -2, Max: 3.25}, b)
	require.Equal(t, 5.25, b.Span())

	_, err = dataset.BoundsOf(nil)
	require.ErrorIs(t, err, dataset.ErrEmptySamples)
}
