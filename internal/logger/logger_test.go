package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/doppel/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{
			name: "json format info level",
			cfg:  &config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
		},
		{
			name: "text format debug level",
			cfg:  &config.LoggingConfig{Level: "debug", Format: "text", Output: "stdout"},
		},
		{
			name: "file output",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
				Output: filepath.Join(t.TempDir(), "doppel.log"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if log == nil {
				t.Fatal("New() returned nil logger")
			}
			log.Infow("test entry", "key", "value")
		})
	}
}

func TestNewFileOutputWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Infow("scan started", "root", "/tmp")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "scan started") {
		t.Errorf("expected log file to contain entry, got: %s", data)
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	if log == nil {
		t.Fatal("NewDefault() returned nil")
	}
}

func TestContextHelpers(t *testing.T) {
	log := NewNop()

	if log.WithRun("abc") == nil {
		t.Error("WithRun returned nil")
	}
	if log.WithGroup("x.txt") == nil {
		t.Error("WithGroup returned nil")
	}
	if log.WithFile("/a/x.txt") == nil {
		t.Error("WithFile returned nil")
	}
}
