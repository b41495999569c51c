package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsAttrs(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("fingerprint complete", slog.Int("files", 3), slog.String("dir", "out"))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level: %q", line)
	}
	if !strings.Contains(line, "fingerprint complete") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "files=3") || !strings.Contains(line, "dir=out") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info line should be suppressed at warn level: %q", buf.String())
	}

	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestJSONHandlerEmitsParseableLines(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar))

	logger.Info("baseline loaded", slog.Int("entries", 7))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("line is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["msg"] != "baseline loaded" {
		t.Fatalf("msg = %v", decoded["msg"])
	}
	if decoded["level"] != "info" {
		t.Fatalf("level = %v", decoded["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere")
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) must return a logger")
	}
	if OrNop(logger) != logger {
		t.Fatal("OrNop must pass through non-nil loggers")
	}
}
