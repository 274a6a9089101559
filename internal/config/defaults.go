package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the
// last fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		UI: UIConfig{
			TickRate: 60,
			Color:    true,
		},
		Server: ServerConfig{
			Address:         ":23234",
			IdleTimeoutMins: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.term2048/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
