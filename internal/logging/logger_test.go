package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(Options{Format: "xml", Writer: &buf}); err == nil {
		t.Error("New() with unknown format returned nil error")
	}
}

func TestNewRequiresWriter(t *testing.T) {
	if _, err := New(Options{Format: "console"}); err == nil {
		t.Error("New() without writer returned nil error")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("manifest files created", String("csv", "manifest.csv"))

	got := buf.String()
	if !strings.Contains(got, "INFO") {
		t.Errorf("console output missing level: %q", got)
	}
	if !strings.Contains(got, "manifest files created") {
		t.Errorf("console output missing message: %q", got)
	}
	if !strings.Contains(got, "csv=manifest.csv") {
		t.Errorf("console output missing attr: %q", got)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info record passed a warn-level logger: %q", got)
	}
	if !strings.Contains(got, "shown") {
		t.Errorf("warn record missing: %q", got)
	}
}

func TestConsoleHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.With(String(FieldRunID, "abc")).Info("scanning HTML files")

	if !strings.Contains(buf.String(), "run_id=abc") {
		t.Errorf("console output missing inherited attr: %q", buf.String())
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("scanning HTML files", Int("records", 3))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("json output not parseable: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "scanning HTML files" {
		t.Errorf("msg = %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Errorf("level = %v", payload["level"])
	}
	if payload["records"] != float64(3) {
		t.Errorf("records = %v", payload["records"])
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger reports enabled")
	}
}

func TestNewComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	NewComponentLogger(base, "scanner").Info("ready")

	if !strings.Contains(buf.String(), "component=scanner") {
		t.Errorf("component attr missing: %q", buf.String())
	}
}
