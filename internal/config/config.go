package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/multierr"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides, e.g. BPGUIDE_SERVER.PORT=9090.
const EnvPrefix = "BPGUIDE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BPGUIDE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: BPGUIDE_TITLE -> title, BPGUIDE_SERVER.PORT -> server.port.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// Validate checks every field and reports all problems together.
func (c *Config) Validate() error {
	var errs error

	if strings.TrimSpace(c.Title) == "" {
		errs = multierr.Append(errs, fmt.Errorf("title is required"))
	}
	if c.DefaultSection == "" {
		errs = multierr.Append(errs, fmt.Errorf("default_section is required"))
	}
	if c.ScrollThreshold < 0 {
		errs = multierr.Append(errs, fmt.Errorf("scroll_threshold must be non-negative"))
	}
	if c.ContentDir != "" {
		if info, err := os.Stat(c.ContentDir); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("content_dir: %w", err))
		} else if !info.IsDir() {
			errs = multierr.Append(errs, fmt.Errorf("content_dir %s is not a directory", c.ContentDir))
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("server.read_header_timeout must be positive"))
	}

	if c.Site.OutputDir == "" {
		errs = multierr.Append(errs, fmt.Errorf("site.output_dir is required"))
	}

	if !validLevels[c.Log.Level] {
		errs = multierr.Append(errs, fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		errs = multierr.Append(errs, fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format))
	}

	return errs
}
