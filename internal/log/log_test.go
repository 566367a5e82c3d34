package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesBothDestinations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsudo.log")
	var stdout bytes.Buffer

	logger, sink, err := newLogger(&stdout, "rsudo", "info", path)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("RSudo is starting")
	logger.Debug("hidden")
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for name, got := range map[string]string{"stdout": stdout.String(), "file": string(data)} {
		for _, want := range []string{"time=", "level=INFO", "logger=rsudo", `msg="RSudo is starting"`} {
			if !strings.Contains(got, want) {
				t.Errorf("%s output %q missing %q", name, got, want)
			}
		}
		if strings.Contains(got, "hidden") {
			t.Errorf("%s output contains debug record", name)
		}
	}
}

func TestNewWithoutFile(t *testing.T) {
	var stdout bytes.Buffer
	logger, sink, err := newLogger(&stdout, "rsudo", "debug", "")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("poll")
	if !strings.Contains(stdout.String(), "level=DEBUG") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestNewBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rsudo.log")
	if _, _, err := newLogger(&bytes.Buffer{}, "rsudo", "info", path); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
