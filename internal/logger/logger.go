// Package logger holds the process-wide structured logger. Output is discarded
// unless Init enables it, so the TUI never writes logs to the terminal.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// L is the global logger instance.
var L = discard()

const (
	logPrefix     = "colview-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

var (
	mu   sync.Mutex
	file *os.File
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.colview/logs
	Level   slog.Level // Minimum log level
}

// Init configures logging, closing the file of an earlier Init. Each day
// gets its own file; files older than retentionDays are removed.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if err := closeFile(); err != nil {
		return err
	}
	if !opts.Enabled {
		return nil
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	cleanOldLogs(dir, now)

	f, err := os.OpenFile(logFile(dir, now), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	file = f
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})).With("pid", os.Getpid())
	return nil
}

// Close flushes and closes the log file, if any, and discards further
// output. It is safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeFile()
}

func closeFile() error {
	L = discard()
	if file == nil {
		return nil
	}
	f := file
	file = nil
	return errors.Join(f.Sync(), f.Close())
}

// SetOutput sends JSON logs to w. Tests use it to capture output.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	_ = closeFile()
	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func logDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".colview", "logs"), nil
}

func logFile(dir string, day time.Time) string {
	return filepath.Join(dir, logPrefix+day.Format(dateLayout)+logSuffix)
}

// logDay parses the date out of a name like colview-2024-01-05.log.
func logDay(name string) (time.Time, bool) {
	stamp, ok := strings.CutPrefix(name, logPrefix)
	if !ok {
		return time.Time{}, false
	}
	stamp, ok = strings.CutSuffix(stamp, logSuffix)
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, stamp)
	return day, err == nil
}

func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if day, ok := logDay(entry.Name()); ok && day.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
