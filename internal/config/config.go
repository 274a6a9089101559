// Package config provides YAML-based configuration loading for the
// term2048 platform. Game rules (grid size, spawn behavior, merge
// semantics) are fixed and deliberately not configurable; only
// presentation, server and storage settings live here.
package config

import "time"

// Config is the top-level configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	TickRate int  `yaml:"tick_rate"` // Simulation ticks per second
	Color    bool `yaml:"color"`     // Colorize tiles
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address         string `yaml:"address"`           // host:port to listen on
	HostKeyPath     string `yaml:"host_key_path"`     // empty = auto-generate
	IdleTimeoutMins int    `yaml:"idle_timeout_mins"` // disconnect idle sessions
}

// StorageConfig holds score persistence settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// IdleTimeout returns the server idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	if s.IdleTimeoutMins <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.IdleTimeoutMins) * time.Minute
}
