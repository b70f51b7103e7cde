// Package logging provides structured logging for the smscode widget and CLI.
//
// This package wraps the zap logger with package-level helpers so the input
// controller, the countdown emitter and the CLI all log the same way without
// passing loggers around.
//
// # Silent By Default
//
// The widget draws over the whole terminal, so logging is disabled until a
// level is configured. Set SMSCODE_LOG_LEVEL to "debug", "info", "warn" or
// "error" and point SMSCODE_LOG_FILE at a file to capture output:
//
//	SMSCODE_LOG_LEVEL=debug SMSCODE_LOG_FILE=/tmp/smscode.log smscode
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Domain Helpers
//
//	logging.LogSlotEdit(slot, "advance", code, focused)
//	logging.LogCountdown("tick", runID, remainingMs)
//
// Slot numbers are logged 1-based to match what the user sees.
package logging
