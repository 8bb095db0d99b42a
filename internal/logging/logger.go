// Package logging constructs the zap.Logger used across the CLI and
// engine for structured, leveled output.
package logging

import "go.uber.org/zap"

// New returns a production zap.Logger (JSON, info level and above) unless
// verbose is set, in which case it returns a development logger (console
// encoding, debug level, caller info).
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// WithRun returns a child logger tagged with the run's seed and algorithm,
// so log lines from concurrent runs (or repeated CLI invocations) can be
// told apart.
func WithRun(logger *zap.Logger, algorithm string, seed int64) *zap.Logger {
	return logger.With(zap.String("algorithm", algorithm), zap.Int64("seed", seed))
}
