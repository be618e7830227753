// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON lines on stderr, warnings and above
//   - Development: colored console output, debug and above
//
// Standard output is reserved for the calculator itself, so the default
// output path is stderr.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer logger.Sync()
//	logger.Warn("Metrics server shutdown failed", zap.Error(err))
package logging
