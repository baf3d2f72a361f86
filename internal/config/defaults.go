package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".bpguide.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Oracle Unifier BP Guide",
		DefaultSection:  "introduction",
		Footer:          "© 2025 Oracle Unifier BP Guide",
		ScrollThreshold: 10,
		Server: ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 10 * time.Second,
		},
		Site: SiteConfig{
			OutputDir: "site",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
