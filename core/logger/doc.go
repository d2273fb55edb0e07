// Package logger provides a structured logging facility based on Zap.
//
// Commands report progress through the logger rather than printing directly, so the
// --quiet flag only has to swap the logger for a no-op one.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console (default for the CLI)
//   - Output: stderr (default), stdout or a file
//   - Quiet: discard everything
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Reading manifest [public/build/manifest.json].")
//
//	// In a dev server handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
