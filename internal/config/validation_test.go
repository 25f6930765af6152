package config

import (
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.ExcludeNames = []string{".git"}
	cfg.Hash.Algorithm = "md5"

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestInvalidAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hash.Algorithm = "crc32"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for unknown algorithm")
	}
	if !strings.Contains(err.Error(), "hash.algorithm") {
		t.Errorf("expected error to mention 'hash.algorithm', got: %v", err)
	}
}

func TestInvalidChunkSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hash.ChunkSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for zero chunk size")
	}
	if !strings.Contains(err.Error(), "hash.chunk_size") {
		t.Errorf("expected error to mention 'hash.chunk_size', got: %v", err)
	}
}

func TestNegativeProgressInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.ProgressInterval = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for negative progress interval")
	}
}

func TestExcludeNameWithSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.ExcludeNames = []string{"sub/dir"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for path-like exclude entry")
	}
	if !strings.Contains(err.Error(), "exclude_names") {
		t.Errorf("expected error to mention 'exclude_names', got: %v", err)
	}
}

func TestInvalidLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for logging settings")
	}

	msg := err.Error()
	if !strings.Contains(msg, "logging.level") || !strings.Contains(msg, "logging.format") {
		t.Errorf("expected both logging errors, got: %v", err)
	}
}

func TestValidationErrorsAccumulate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hash.Algorithm = "crc32"
	cfg.Hash.ChunkSize = -5
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}
