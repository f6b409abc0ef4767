// Package logging builds the debug logger for toybox. Logs go to
// <home>/logs/toybox.log when debug mode is on; otherwise every call is a
// no-op so the toys stay silent.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a file-backed zap logger rooted at home, or a no-op logger
// when debug is off.
func New(home string, debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	logsDir := filepath.Join(home, "logs")
	if err := os.MkdirAll(logsDir, 0o700); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{filepath.Join(logsDir, "toybox.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
