package guide

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// DefaultSectionID is the section shown on initial load.
const DefaultSectionID = "introduction"

// catalogFile is the shape of data/sections.yaml.
type catalogFile struct {
	Sections []Section `yaml:"sections"`
}

// Load builds the registry from the embedded guide data. When overrideDir is
// non-empty, every *.yaml file beneath it is read as an authored content block
// that replaces (or adds to) the embedded content for the same section id.
func Load(defaultID, overrideDir string) (*Registry, error) {
	data, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	var overrides fs.FS
	if overrideDir != "" {
		if _, err := os.Stat(overrideDir); err != nil {
			return nil, fmt.Errorf("content dir %s: %w", overrideDir, err)
		}
		overrides = os.DirFS(overrideDir)
	}
	return LoadFS(data, overrides, defaultID)
}

// LoadFS reads sections.yaml and content/**/*.yaml from fsys, then applies
// overrides (which may be nil).
func LoadFS(fsys, overrides fs.FS, defaultID string) (*Registry, error) {
	raw, err := fs.ReadFile(fsys, "sections.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading sections: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parsing sections: %w", err)
	}
	catalog, err := NewCatalog(cf.Sections)
	if err != nil {
		return nil, err
	}

	authored, err := readContent(fsys, "content/**/*.yaml")
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		extra, err := readContent(overrides, "**/*.yaml")
		if err != nil {
			return nil, err
		}
		authored = mergeContent(authored, extra)
	}

	if defaultID == "" {
		defaultID = DefaultSectionID
	}
	return NewRegistry(catalog, authored, defaultID)
}

// readContent parses every file matching pattern. All file errors are reported together.
func readContent(fsys fs.FS, pattern string) ([]Content, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}

	var (
		out  []Content
		errs error
	)
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("reading %s: %w", name, err))
			continue
		}
		var c Content
		if err := yaml.Unmarshal(raw, &c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parsing %s: %w", name, err))
			continue
		}
		out = append(out, c)
	}
	return out, errs
}

// mergeContent replaces base entries by section id and appends new ones.
func mergeContent(base, extra []Content) []Content {
	pos := make(map[string]int, len(base))
	for i, c := range base {
		pos[c.SectionID] = i
	}
	for _, c := range extra {
		if i, ok := pos[c.SectionID]; ok {
			base[i] = c
			continue
		}
		pos[c.SectionID] = len(base)
		base = append(base, c)
	}
	return base
}
