// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("key", "value").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("output missing structured field: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "error", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("should not appear")
	Info().Msg("should not appear either")

	if buf.Len() != 0 {
		t.Errorf("expected no output below error level, got: %s", buf.String())
	}

	Error().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("error-level message missing: %s", buf.String())
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Msg("captured")

	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("test logger output missing message: %s", buf.String())
	}
}

func TestWithChildLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	child := With().Str("component", "recommend").Logger()
	child.Info().Msg("scoped")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("child logger missing component field: %s", buf.String())
	}
}
