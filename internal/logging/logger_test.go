package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentWhenUnset(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Error("logger should be silent when no level is configured")
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("silent logger should not enable error level either")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, "")
	defer SetLogger(nil)

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogSlotEditFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogSlotEdit(1, "advance", "12", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["slot"] != int64(2) {
		t.Errorf("slot = %v, want 2 (1-based)", fields["slot"])
	}
	if fields["length"] != int64(2) {
		t.Errorf("length = %v, want 2", fields["length"])
	}
	if fields["rule"] != "advance" {
		t.Errorf("rule = %v, want advance", fields["rule"])
	}
}

func TestLogSlotEditAllSlots(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogSlotEdit(AllSlots, "distribute", "1234", 3)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["slot"]; ok {
		t.Errorf("slot = %v, want no slot field for a whole-code write", fields["slot"])
	}
	if fields["length"] != int64(4) {
		t.Errorf("length = %v, want 4", fields["length"])
	}
}

func TestWarnAndError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Info("dropped")
	Warn("countdown cleared")
	Error("save failed", zap.String("path", "/tmp/x"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries at warn level, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel || entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("levels = %v, %v", entries[0].Level, entries[1].Level)
	}
	if entries[1].ContextMap()["path"] != "/tmp/x" {
		t.Errorf("path field = %v", entries[1].ContextMap()["path"])
	}
}

func TestSyncTerminalOutput(t *testing.T) {
	t.Setenv(LogFileEnvVar, "")
	SetLogger(nil)

	if err := Sync(); err != nil {
		t.Errorf("Sync() error = %v, want nil for terminal output", err)
	}
}
