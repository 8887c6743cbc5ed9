package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		name     string
		expected log.Level
		wantErr  bool
	}{
		{"fatal", log.FatalLevel, false},
		{"error", log.ErrorLevel, false},
		{"warning", log.WarnLevel, false},
		{"warn", log.WarnLevel, false},
		{"info", log.InfoLevel, false},
		{"verbose", log.DebugLevel, false},
		{"debug", log.DebugLevel, false},
		{"VERBOSE", log.DebugLevel, false},
		{"", log.InfoLevel, false},
		{"chatty", log.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, err := ParseVerbosity(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseVerbosity(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if level != tc.expected {
				t.Errorf("ParseVerbosity(%q) = %v, expected %v", tc.name, level, tc.expected)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pong.log")

	logger, closer, err := New(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("match started")
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "match started") {
		t.Errorf("log = %q, expected the info line", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("log = %q, debug line should be filtered", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Error("New() with an unknown level should fail")
	}
}

func TestCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, log.InfoLevel)

	Category(logger, CategorySim).Info("point")

	if !strings.Contains(buf.String(), "pong/sim") {
		t.Errorf("output = %q, expected the pong/sim prefix", buf.String())
	}
}
