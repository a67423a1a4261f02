// File: logger_test.go
// Title: Logger Tests
// Description: Unit tests for the structured logger, level filtering, and
//              both output formatters.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept warn")
	logger.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output should not contain filtered entries: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("output missing expected entries: %q", out)
	}
}

func TestWithFieldContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	child := logger.WithField("component", "dispatcher")
	child.Info("executing", Fields{"attempt": 1})

	out := buf.String()
	if !strings.Contains(out, "component=dispatcher") {
		t.Errorf("output missing context field: %q", out)
	}
	if !strings.Contains(out, "attempt=1") {
		t.Errorf("output missing call field: %q", out)
	}
}

func TestChildDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	_ = logger.WithField("component", "shell")
	logger.Info("plain")

	if strings.Contains(buf.String(), "component=shell") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:     LevelDebug,
		Output:    &buf,
		Formatter: NewJSONFormatter(),
		Name:      "test",
	})

	logger.Info("command executed", Fields{"command": "Fixture 1 At 50"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v: %q", err, buf.String())
	}
	if data["message"] != "command executed" {
		t.Errorf("message = %v", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v", data["level"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v", data["logger"])
	}
	if data["command"] != "Fixture 1 At 50" {
		t.Errorf("command field = %v", data["command"])
	}
}

func TestTextFormatterStableFieldOrder(t *testing.T) {
	f := NewTextFormatter()
	entry := &Entry{
		Timestamp: time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "msg",
		Fields:    Fields{"b": 2, "a": 1, "c": 3},
	}

	out1, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	out2, _ := f.Format(entry)
	if string(out1) != string(out2) {
		t.Error("formatter output must be deterministic")
	}
	if !strings.Contains(string(out1), "a=1 b=2 c=3") {
		t.Errorf("fields not in lexical order: %q", string(out1))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
