// Package config provides configuration structures and loading for doppel.
package config

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Hash    HashConfig    `yaml:"hash" mapstructure:"hash"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig controls directory traversal behavior.
type ScanConfig struct {
	CaseSensitive    bool     `yaml:"case_sensitive" mapstructure:"case_sensitive"`
	ExcludeNames     []string `yaml:"exclude_names" mapstructure:"exclude_names"`
	ProgressInterval int      `yaml:"progress_interval" mapstructure:"progress_interval"`
}

// HashConfig controls content digesting.
type HashConfig struct {
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"` // sha256, md5, or xxh64
	ChunkSize int    `yaml:"chunk_size" mapstructure:"chunk_size"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			CaseSensitive:    false,
			ExcludeNames:     nil,
			ProgressInterval: 1000,
		},
		Hash: HashConfig{
			Algorithm: "sha256",
			ChunkSize: 4096,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, verbose bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if verbose {
		c.Logging.Level = "debug"
	}
}

// Excluded reports whether a file or directory name is on the scan
// exclude list.
func (c *Config) Excluded(name string) bool {
	for _, ex := range c.Scan.ExcludeNames {
		if name == ex {
			return true
		}
	}
	return false
}
