package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pushover-notifier")

	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("logs directory was not created: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	// Exercise each level against the live logger.
	Debug("debug line")
	Info("info line", "key", "value")
	Warn("warn line")
	Error("error line", "err", os.ErrNotExist)
}

func TestInit_DebugLowersLevel(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Dir: dir, Debug: true}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("visible at debug level")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "pushover-notifier.log"))
	if err != nil {
		t.Fatalf("reading log file failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("debug line was not written to the log file")
	}
}

func TestHelpers_SafeBeforeInit(t *testing.T) {
	Logger = nil

	// None of these may panic before Init has run.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
