// Package logger wires the app's structured logging. Output goes to a
// rotating file under the config directory, because the interactive UI
// owns the terminal; command-line paths can additionally echo to
// stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It stays nil until Init, and the
// package-level helpers tolerate that, so early startup code can log
// unconditionally.
var Logger *log.Logger

// Config controls where and how much the app logs.
type Config struct {
	// Debug lowers the level to debug and records caller positions.
	Debug bool
	// Dir is the directory the logs/ subdirectory is created in.
	Dir string
	// Echo additionally mirrors log output to stderr. Only safe for
	// subcommands; the full-screen UI would be garbled by it.
	Echo bool
}

// Init builds the global logger. The log file rotates at 10 MB with a
// few weeks of compressed history, so it can be left unattended.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.Dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "pushover-notifier.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = fileWriter
	if cfg.Echo {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pushover-notifier",
	})
	return nil
}

// Debug logs at debug level once Init has run.
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs at info level once Init has run.
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs at warn level once Init has run.
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs at error level once Init has run.
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
