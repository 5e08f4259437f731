// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/matrix"
)

func TestValidators(t *testing.T) {
	sq, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 1})
	require.NoError(t, err)
	wide, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSymmetric(sq, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(sq, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSameCols(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
