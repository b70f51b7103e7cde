package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SMSCODE_LOG_LEVEL"

// LogFileEnvVar names the file logs are written to. The widget owns the
// terminal while it runs, so anything other than a file (or stderr redirected
// elsewhere) will be drawn over.
const LogFileEnvVar = "SMSCODE_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks SMSCODE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := os.Getenv(LogFileEnvVar)
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from SMSCODE_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks onto the widget's screen
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// AllSlots marks an edit that wrote every slot at once.
const AllSlots = -1

// LogSlotEdit logs how an edit on one slot was resolved. With slot AllSlots
// the slot field is omitted.
func LogSlotEdit(slot int, rule string, code string, focused int) {
	fields := make([]zap.Field, 0, 4)
	if slot != AllSlots {
		fields = append(fields, zap.Int("slot", slot+1))
	}
	fields = append(fields,
		zap.String("rule", rule),
		zap.Int("length", len([]rune(code))),
		zap.Int("focused", focused+1),
	)
	Debug("Slot edit", fields...)
}

// LogCountdown logs a countdown state change or tick.
func LogCountdown(event string, runID int, remainingMs int64) {
	Debug("Countdown event",
		zap.String("event", event),
		zap.Int("run_id", runID),
		zap.Int64("remaining_ms", remainingMs),
	)
}

// Sync flushes any buffered log entries. Syncing a terminal is not
// supported on every platform, so only file outputs report failures.
func Sync() error {
	if logger == nil {
		return nil
	}
	if err := logger.Sync(); err != nil && isFileOutput(os.Getenv(LogFileEnvVar)) {
		return fmt.Errorf("failed to flush logs: %w", err)
	}
	return nil
}

func isFileOutput(output string) bool {
	return output != "" && output != "stderr" && output != "stdout"
}
