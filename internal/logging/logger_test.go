package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			log := NewLogger(Config{Level: tt.input, NoColor: true})
			if log.GetLevel() != tt.want {
				t.Errorf("NewLogger(level=%q) level = %v, want %v", tt.input, log.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "py.log")

	log := NewLogger(Config{Level: "debug", LogFile: logFile, NoColor: true})
	if log == nil {
		t.Fatal("expected logger, got nil")
	}

	log.Debug().Str("component", "test").Msg("hello")
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewTestLogger(&buf)

	log.Info().Str("key", "value").Msg("message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["message"] != "message" || entry["key"] != "value" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}
