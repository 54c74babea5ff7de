// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output on stderr for human readability
//
// NewDefault and NewDevelopment never fail; they fall back to a no-op
// logger. The server uses NewDefault when LOG_LEVEL is unusable and the
// CLI uses NewDevelopment for -v.
//
// The calculator and converter packages never log; the HTTP service and
// the CLI do.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("addr", ":8000"))
//	logger.Error("Conversion failed", zap.Error(err))
package logging
