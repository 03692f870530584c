// Package logging builds the logger behind the --verbose flag.
package logging

import (
	"go.uber.org/zap"
)

// New returns a console logger writing to stderr when verbose is set,
// otherwise a no-op logger. stdout stays reserved for JSON payloads.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
