// Package diag wires a single *zap.Logger for the rest of the module,
// the way codenerd's cmd/nerd wires one global logger in main.go:
// nop by default so library code never pays for logging it didn't ask
// for. cmd/eacore swaps in a real sink on every invocation: Info level
// by default, Debug level once its --debug flag is set.
package diag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// L returns the current logger.
func L() *zap.Logger { return logger }

// SetLevel rebuilds the global logger at the given level, colorized
// development encoding at Debug and production JSON otherwise.
func SetLevel(level zapcore.Level) error {
	var cfg zap.Config
	if level <= zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = logger.Sync()
}
