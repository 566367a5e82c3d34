package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Sink owns the log destinations opened by New.
type Sink struct {
	file *os.File
}

// Close flushes and releases the file destination, if any.
func (s *Sink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	file := s.file
	s.file = nil
	return errors.Join(file.Sync(), file.Close())
}

// New creates a structured logger that writes to stdout and, when path is
// set, appends to the file at path. Every record carries the logger name.
func New(name, level, path string) (*slog.Logger, *Sink, error) {
	return newLogger(os.Stdout, name, level, path)
}

func newLogger(stdout io.Writer, name, level, path string) (*slog.Logger, *Sink, error) {
	sink := &Sink{}
	out := stdout
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink.file = file
		out = io.MultiWriter(stdout, file)
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler).With("logger", name), sink, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
