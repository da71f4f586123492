// Package logger provides a structured logging facility based on Zap.
//
// Logs go to stderr so command output on stdout stays clean for piping.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (colored levels on a terminal) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Import finished", zap.Int("updated", 3))
package logger
