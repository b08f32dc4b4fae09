// Package logger provides a structured logging facility based on Zap.
//
// Human status lines (banner, URL, shutdown notice) are printed by the launcher
// itself; this logger carries the diagnostic stream: per-request lines, listener
// errors and browser launch failures.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to
// the log entry, so all lines of one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
package logger
