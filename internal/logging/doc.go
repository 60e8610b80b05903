// Package logging provides structured logging for wifi-cli.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the tool. Because stdout is owned by the
// interactive screen, all log output goes to stderr, and logging is silent
// unless explicitly enabled.
//
// # Configuration
//
// Logging is controlled via the WIFI_CLI_LOG_LEVEL environment variable.
// When unset or empty, zap logging is disabled entirely so the interactive
// display stays clean. Set it to "debug", "info", "warn", or "error" to
// enable output:
//
//	WIFI_CLI_LOG_LEVEL=debug wifi-cli
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("External command finished",
//	    zap.String("command", "nmcli"),
//	    zap.Int("exit_code", 0),
//	)
//
// Specialized helpers cover the two recurring events in this tool:
//
//	logging.LogCommand("nmcli", args, exitCode)
//	logging.LogTransition("browsing", "entering_password")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
