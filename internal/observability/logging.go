// Package observability builds the game's zap logger.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/wonders/internal/config"
)

// NewLogger builds the logger for one game process. Every entry carries the
// game field so lines from a shared file can be told apart.
//
// The console owns stdout, so output goes to cfg.File when set and stderr
// otherwise. "json" selects zap's production encoder and "console" the
// development one.
//
// Precondition: cfg has passed config validation.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: format %q is neither json nor console", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build(zap.Fields(zap.String("game", "city-of-wonders")))
	if err != nil {
		return nil, fmt.Errorf("logging: building %s logger: %w", cfg.Format, err)
	}
	return logger, nil
}
