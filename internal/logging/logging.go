// Package logging builds the application's zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLevel returns an adjustable level: debug when verbose, info otherwise
func NewLevel(verbose bool) zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	SetVerbose(level, verbose)
	return level
}

// SetVerbose switches a level between debug and info at runtime
func SetVerbose(level zap.AtomicLevel, verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// New builds a console logger whose threshold follows level, so settings can
// change verbosity without rebuilding the logger.
func New(level zap.AtomicLevel) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewOrNop is New that falls back to a no-op logger instead of failing
func NewOrNop(level zap.AtomicLevel) *zap.Logger {
	logger, err := New(level)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
