package config

import "time"

// Config is the top-level bpguide configuration, corresponding to .bpguide.yml.
type Config struct {
	Title           string       `yaml:"title" koanf:"title"`
	DefaultSection  string       `yaml:"default_section" koanf:"default_section"`
	Footer          string       `yaml:"footer" koanf:"footer"`
	ContentDir      string       `yaml:"content_dir,omitempty" koanf:"content_dir"`
	ScrollThreshold int          `yaml:"scroll_threshold" koanf:"scroll_threshold"`
	Server          ServerConfig `yaml:"server" koanf:"server"`
	Site            SiteConfig   `yaml:"site" koanf:"site"`
	Log             LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig holds settings for the live server.
type ServerConfig struct {
	Port              int           `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" koanf:"read_header_timeout"`
}

// SiteConfig holds settings for the static export.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
