// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the default numeric policy on Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v, "rejected write must leave the cell untouched")
}

func TestNewDenseFromCopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	data[0] = 100 // caller keeps ownership
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 1, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowColAndClone(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = -1 // copy, not a view
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []float64{1, 2, 3}, m.RowView(0))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v, "clone must not alias the original")
}

func TestInducedAndSelectRows(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	require.Equal(t, "[6]\n[2]\n", sub.String())

	rows, err := m.SelectRows([]int{1, 1})
	require.NoError(t, err)
	require.Equal(t, "[3, 4]\n[3, 4]\n", rows.String())

	_, err = m.SelectRows([]int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.SelectRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
