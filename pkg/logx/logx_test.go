package logx

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestZeroLoggerIsNoop(t *testing.T) {
	var l Logger
	if !l.IsZero() {
		t.Fatalf("expected zero logger")
	}
	l.Info("nothing happens", String("k", "v"))
	if l.With(Int("n", 1)).IsZero() {
		t.Fatalf("derived logger with fields should not be zero")
	}
}

func TestNewWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", String("keyboard", "main"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "keyboard=main") {
		t.Fatalf("unexpected output: %q", out)
	}
	if l.Enabled(LevelDebug) {
		t.Fatalf("debug should be disabled at warn level")
	}
}

func TestServiceApplySwapsLevel(t *testing.T) {
	var buf bytes.Buffer
	svc, l := NewTo(&buf, Config{Level: "error", Console: true})
	defer svc.Close()

	l.Warn("first")
	if buf.Len() != 0 {
		t.Fatalf("warn logged at error level: %q", buf.String())
	}

	svc.Apply(Config{Level: "debug", Console: true})
	l.Debug("second")
	if !strings.Contains(buf.String(), "second") {
		t.Fatalf("expected debug line after Apply, got %q", buf.String())
	}
	if got := svc.Config().Level; got != "debug" {
		t.Fatalf("Config().Level = %q", got)
	}
}

func TestServiceFileSinkIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	var console bytes.Buffer
	svc, l := NewTo(&console, Config{Level: "info", File: FileConfig{Enabled: true, Path: path}})
	l.Info("built", Int("rows", 2))
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(b), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, b)
	}
	if m["message"] != "built" || m["rows"] != float64(2) {
		t.Fatalf("unexpected log record: %v", m)
	}
	if console.Len() != 0 {
		t.Fatalf("console disabled but got %q", console.String())
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel(" Warning ", LevelInfo); got != LevelWarn {
		t.Fatalf("ParseLevel(Warning) = %v", got)
	}
	if got := ParseLevel("bogus", LevelError); got != LevelError {
		t.Fatalf("ParseLevel(bogus) = %v", got)
	}
}
