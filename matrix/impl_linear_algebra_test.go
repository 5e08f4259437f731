// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/matrix"
)

// hide wraps a Matrix to force the interface (non-Dense) code paths.
type hide struct{ matrix.Matrix }

func TestMatVec_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	x := []float64{1, 0, -1}

	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)

	require.Equal(t, []float64{-2, -2}, fast)
	require.Equal(t, fast, slow)
}

func TestMatVec_Validation(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(nil, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
