package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/progress"
	"github.com/ziadkadry99/bpguide/internal/view"
)

// SiteGenerator writes the guide as a static site: one page per section plus
// index.html for the default section, the shared assets and a search index.
type SiteGenerator struct {
	OutputDir string
	Registry  *guide.Registry
	Options   Options
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(reg *guide.Registry, outputDir string, opts Options) *SiteGenerator {
	opts.Static = true
	return &SiteGenerator{
		OutputDir: outputDir,
		Registry:  reg,
		Options:   opts,
		Reporter:  progress.Nop{},
	}
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	r, err := NewRenderer(g.Registry, g.Options)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	entries, err := BuildSearchIndex(r)
	if err != nil {
		return 0, fmt.Errorf("building search index: %w", err)
	}
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	sections := g.Registry.Catalog().Sections()
	g.Reporter.Start(len(sections) + 1)
	defer g.Reporter.Finish()

	if err := g.renderPage(r, "index.html", g.Registry.DefaultID()); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}
	g.Reporter.Update(1, "index.html")

	for i, s := range sections {
		name := PageFile(s.ID)
		if err := g.renderPage(r, name, s.ID); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", s.ID, err)
		}
		g.Reporter.Update(i+2, name)
	}

	return len(sections) + 1, nil
}

// renderPage writes the page for one section in its initial state.
func (g *SiteGenerator) renderPage(r *Renderer, name, id string) error {
	st := view.New(g.Registry, view.WithSection(id), view.WithScrollThreshold(g.Options.ScrollThreshold))

	f, err := os.Create(filepath.Join(g.OutputDir, name))
	if err != nil {
		return err
	}
	if err := r.Page(f, st); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
