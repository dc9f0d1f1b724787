package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	log.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "test message" {
		t.Fatalf("expected msg %q, got %v", "test message", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Fatalf("expected key=value attribute, got %v", entry["key"])
	}
}

func TestNewTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "text", &buf)

	log.Debug("debugging", "n", 5)

	out := buf.String()
	if !strings.Contains(out, "debugging") {
		t.Fatalf("expected text output to contain message, got %q", out)
	}
	if !strings.Contains(out, "n=5") {
		t.Fatalf("expected text output to contain attribute, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("error", "json", &buf)

	log.Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info message to be filtered at error level, got %q", buf.String())
	}

	log.Error("should be kept")
	if buf.Len() == 0 {
		t.Fatalf("expected error message to be logged")
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer SetDefault(original)

	var buf bytes.Buffer
	log := New("info", "json", &buf)
	SetDefault(log)

	if Default != log {
		t.Fatalf("expected Default to be replaced")
	}

	Info("via package function")
	if buf.Len() == 0 {
		t.Fatalf("expected package-level Info to write to new default")
	}
}
