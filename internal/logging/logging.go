// Package logging builds the zap loggers shared by the binaries.
package logging

import (
	"fmt"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a settings level name to a zap level. Unknown names map to info.
func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New builds a logger. format "json" selects the production encoder, anything
// else the human readable development encoder.
func New(levelStr, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	// stdout carries reports
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// ForEngine adapts l to the calculation engine logger. A nil logger yields
// the no-op logger.
func ForEngine(l *zap.Logger) calculation.Logger {
	if l == nil {
		return calculation.NopLogger{}
	}
	return l.Sugar()
}
