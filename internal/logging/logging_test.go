package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlearn/internal/logging"
)

func TestFromContext(t *testing.T) {
	require.Same(t, logging.DefaultLogger(), logging.FromContext(context.Background()))

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()
	ctx := logging.WithLogger(context.Background(), logger)
	require.Same(t, logger, logging.FromContext(ctx))

	logging.FromContext(ctx).Infow("trained", "tau", 1e-8)
	require.Equal(t, 1, logs.FilterMessage("trained").Len())
}

func TestNewLoggerLevels(t *testing.T) {
	require.True(t, logging.NewLogger(true).Desugar().Core().Enabled(zap.DebugLevel))
	require.False(t, logging.NewLogger(false).Desugar().Core().Enabled(zap.DebugLevel))
}
