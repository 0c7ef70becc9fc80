package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	logger, err := InitLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Same(t, logger, Logger)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
