package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/selection"
)

func TestLinearRange(t *testing.T) {
	taus, err := selection.LinearRange(1e-8, 1e-6, 1e-6)
	require.NoError(t, err)
	require.Equal(t, []float64{1e-8}, taus)

	vs, err := selection.LinearRange(0, 1, 0.25)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, vs)

	vs, err = selection.LinearRange(0, 0.3, 0.1) // 3*0.1 drifts above 0.3
	require.NoError(t, err)
	require.Len(t, vs, 4)

	_, err = selection.LinearRange(0, 1, 0)
	require.ErrorIs(t, err, selection.ErrInvalidRange)
	_, err = selection.LinearRange(2, 1, 0.5)
	require.ErrorIs(t, err, selection.ErrInvalidRange)
}

func TestIntRange(t *testing.T) {
	ds, err := selection.IntRange(5, 15, 1)
	require.NoError(t, err)
	require.Len(t, ds, 11)
	require.Equal(t, 5, ds[0])
	require.Equal(t, 15, ds[10])

	_, err = selection.IntRange(5, 4, 1)
	require.ErrorIs(t, err, selection.ErrInvalidRange)
}
