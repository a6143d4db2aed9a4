package config

import (
	_ "embed"
)

//go:embed defaults/asc.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: no grid overrides and
// info-level logging to stderr.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
