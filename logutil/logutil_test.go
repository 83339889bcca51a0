// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	t.Setenv(EnvDebug, "")

	SetupLogger(true, false)
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled")
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDebugEnvVar(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(EnvDebug, "true")
	SetupLoggerWithWriter(&buf, false, false)
	if !IsDebugEnabled() {
		t.Fatal("expected debug to be enabled via env var")
	}
	Debug("from env")
	if !strings.Contains(buf.String(), "from env") {
		t.Errorf("expected debug record, got: %s", buf.String())
	}

	t.Setenv(EnvDebug, "")
	SetupLoggerWithWriter(&buf, false, false)
	if IsDebugEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestDebugWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(EnvDebug, "")
	SetupLoggerWithWriter(&buf, false, false)

	Debug("hidden message")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)

	Info("lookup done", "pid", 42)

	output := buf.String()
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("expected level=INFO, got: %s", output)
	}
	if !strings.Contains(output, "pid=42") {
		t.Errorf("expected pid=42, got: %s", output)
	}
}

func TestLogOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)

	Warn("snapshot failed", "error", "access denied")

	output := buf.String()
	if !strings.Contains(output, `"level":"WARN"`) {
		t.Errorf("expected JSON level, got: %s", output)
	}
	if !strings.Contains(output, `"error":"access denied"`) {
		t.Errorf("expected JSON error field, got: %s", output)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	SetLevel(LevelError)
	Warn("suppressed")
	Error("kept")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("warn should be filtered at error level, got: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("expected error record, got: %s", output)
	}
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}
