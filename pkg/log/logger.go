package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	current io.Closer
)

// Init configures the default slog logger to write text records to the file
// at path (or stderr when path is empty) at the given level.
//
// path: Log file path. Parent directories are created. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
//
// A previously opened log file is closed once the new logger is installed.
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	var f *os.File
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		var err error
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}

	slog.SetDefault(New(w, level))

	if current != nil {
		current.Close()
		current = nil
	}
	if f != nil {
		current = f
	}
	return nil
}

// Close closes the log file opened by Init, if any, and resets the default
// logger to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return nil
	}
	slog.SetDefault(New(os.Stderr, "info"))
	err := current.Close()
	current = nil
	return err
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
