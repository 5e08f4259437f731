package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/metrics"
)

func TestMeanErrors(t *testing.T) {
	pred := []float64{1, 2, 3, 4}
	truth := []float64{1, 0, 4, 7}

	mse, err := metrics.MeanSquaredError(pred, truth)
	require.NoError(t, err)
	assert.InDelta(t, (0+4+1+9)/4.0, mse, 1e-12)

	mae, err := metrics.MeanAbsoluteError(pred, truth)
	require.NoError(t, err)
	assert.InDelta(t, (0+2+1+3)/4.0, mae, 1e-12)

	mse, err = metrics.MeanSquaredError(truth, truth)
	require.NoError(t, err)
	assert.Zero(t, mse)
}

func TestMetricErrors(t *testing.T) {
	for name, m := range map[string]metrics.Metric{
		"mse": metrics.MeanSquaredError,
		"mae": metrics.MeanAbsoluteError,
	} {
		_, err := m([]float64{1}, []float64{1, 2})
		assert.ErrorIs(t, err, metrics.ErrLengthMismatch, name)
		_, err = m(nil, nil)
		assert.ErrorIs(t, err, metrics.ErrEmpty, name)
	}
}
