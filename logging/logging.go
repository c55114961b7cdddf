// Package logging builds the zap logger shared by the CLI and the store.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a production logger writing JSON to stderr at the given level.
func New(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewGormLogger routes gorm's SQL log onto logger. Statements are traced only
// when debug is enabled; otherwise only slow queries and errors come through.
func NewGormLogger(logger *zap.Logger) gormlogger.Interface {
	core := logger.Core()
	switch {
	case core.Enabled(zapcore.DebugLevel):
		return newGormLogger(logger, zapcore.DebugLevel, gormlogger.Info)
	case core.Enabled(zapcore.WarnLevel):
		return newGormLogger(logger, zapcore.WarnLevel, gormlogger.Warn)
	default:
		return gormlogger.Discard
	}
}

func newGormLogger(logger *zap.Logger, at zapcore.Level, mode gormlogger.LogLevel) gormlogger.Interface {
	std, err := zap.NewStdLogAt(logger.Named("gorm"), at)
	if err != nil {
		return gormlogger.Discard
	}
	return gormlogger.New(std, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  mode,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
