package cmd

import (
	"fmt"

	"github.com/ziadkadry99/bpguide/internal/config"
	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bpguide init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return c, nil
}

// loadRegistry builds the section registry from the embedded guide and the
// configured content overrides.
func loadRegistry() (*guide.Registry, error) {
	reg, err := guide.Load(cfg.DefaultSection, cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("loading guide: %w", err)
	}
	return reg, nil
}

// siteOptions maps the config onto renderer options.
func siteOptions() site.Options {
	return site.Options{
		Title:           cfg.Title,
		Footer:          cfg.Footer,
		ScrollThreshold: cfg.ScrollThreshold,
	}
}
