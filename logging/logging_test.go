package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	logger, err := New(zapcore.WarnLevel)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewGormLogger(t *testing.T) {
	t.Run("nop logger discards", func(t *testing.T) {
		assert.Equal(t, gormlogger.Discard, NewGormLogger(zap.NewNop()))
	})

	t.Run("debug logger traces", func(t *testing.T) {
		logger, err := New(zapcore.DebugLevel)
		require.NoError(t, err)

		assert.NotEqual(t, gormlogger.Discard, NewGormLogger(logger))
	})
}
