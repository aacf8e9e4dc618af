package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		logger, err := NewLogger("")
		require.NoError(t, err)

		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("LOG_LEVEL debug", func(t *testing.T) {
		logger, err := NewLogger("debug")
		require.NoError(t, err)

		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger("verbose")
		assert.Error(t, err)
	})
}
