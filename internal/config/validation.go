package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateScan(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateHash(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if c.Scan.ProgressInterval < 0 {
		errors = append(errors, ValidationError{
			Field:   "scan.progress_interval",
			Message: "progress_interval cannot be negative",
		})
	}

	for i, name := range c.Scan.ExcludeNames {
		if strings.ContainsRune(name, '/') {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("scan.exclude_names[%d]", i),
				Message: "exclude entries are bare names, not paths",
			})
		}
	}

	return errors
}

func (c *Config) validateHash() ValidationErrors {
	var errors ValidationErrors

	validAlgorithms := map[string]bool{"sha256": true, "md5": true, "xxh64": true, "": true}
	if !validAlgorithms[c.Hash.Algorithm] {
		errors = append(errors, ValidationError{
			Field:   "hash.algorithm",
			Message: "algorithm must be 'sha256', 'md5', or 'xxh64'",
		})
	}

	if c.Hash.ChunkSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "hash.chunk_size",
			Message: "chunk_size must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
