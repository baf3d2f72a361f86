package guide

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	r, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if r.DefaultID() != DefaultSectionID {
		t.Errorf("DefaultID() = %q, want %q", r.DefaultID(), DefaultSectionID)
	}
	if n := r.Catalog().Len(); n != 20 {
		t.Errorf("catalog has %d sections, want 20", n)
	}

	want := []string{"about", "cost-bp", "document-bp", "faq", "features", "foundations", "introduction", "references", "testimonials"}
	got := r.AuthoredIDs()
	if len(got) != len(want) {
		t.Fatalf("AuthoredIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AuthoredIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Every catalogued section resolves to non-empty content for itself.
	for _, s := range r.Catalog().Sections() {
		c := r.Resolve(s.ID)
		if c.SectionID != s.ID {
			t.Errorf("Resolve(%q) returned %q", s.ID, c.SectionID)
		}
		if len(c.Blocks) == 0 {
			t.Errorf("Resolve(%q) has no blocks", s.ID)
		}
		_, authored := r.Authored(s.ID)
		if c.Placeholder == authored {
			t.Errorf("Resolve(%q).Placeholder = %v with authored = %v", s.ID, c.Placeholder, authored)
		}
	}
}

func TestLoadedAccordionCounts(t *testing.T) {
	r, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	tests := map[string]int{"foundations": 4, "faq": 5, "introduction": 0, "cost-bp": 0}
	for id, want := range tests {
		if got := r.Resolve(id).Accordions(); got != want {
			t.Errorf("%s accordions = %d, want %d", id, got, want)
		}
	}
}

func TestLoadedCostCharts(t *testing.T) {
	r, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	var charts []*Chart
	for _, b := range r.Resolve("cost-bp").Blocks {
		if b.Kind == BlockChart {
			charts = append(charts, b.Chart)
		}
	}
	if len(charts) != 2 {
		t.Fatalf("cost-bp has %d charts, want 2", len(charts))
	}
	if charts[0].Kind != ChartDoughnut || charts[1].Kind != ChartBar {
		t.Errorf("chart kinds = %s, %s", charts[0].Kind, charts[1].Kind)
	}
	d := charts[0].Datasets[0]
	if d.BorderWidth == nil || *d.BorderWidth != 0 || d.HoverOffset != 8 {
		t.Errorf("doughnut dataset = %+v", d)
	}
	if len(charts[1].Datasets) != 2 || charts[1].Datasets[1].Label != "Fund Management" {
		t.Errorf("bar datasets = %+v", charts[1].Datasets)
	}
}

func TestLoadFSOverrides(t *testing.T) {
	base := fstest.MapFS{
		"sections.yaml": {Data: []byte(`sections:
  - {id: a, title: A, icon: star, category: overview}
  - {id: b, title: B, icon: star, category: resources}
`)},
		"content/a.yaml": {Data: []byte("id: a\ntitle: Original A\nblocks:\n  - {kind: prose, markdown: hi}\n")},
	}
	overrides := fstest.MapFS{
		"nested/a.yaml": {Data: []byte("id: a\ntitle: Replaced A\nblocks: []\n")},
		"b.yaml":        {Data: []byte("id: b\ntitle: New B\nblocks: []\n")},
	}

	r, err := LoadFS(base, overrides, "a")
	if err != nil {
		t.Fatalf("LoadFS() error: %v", err)
	}
	if got := r.Resolve("a").Title; got != "Replaced A" {
		t.Errorf("a title = %q, want Replaced A", got)
	}
	if got := r.Resolve("b"); got.Title != "New B" || got.Placeholder {
		t.Errorf("b = %+v, want authored New B", got)
	}
}

func TestLoadFSReportsEveryBadFile(t *testing.T) {
	base := fstest.MapFS{
		"sections.yaml":  {Data: []byte("sections:\n  - {id: a, title: A, category: overview}\n")},
		"content/x.yaml": {Data: []byte("id: [\n")},
		"content/y.yaml": {Data: []byte("title: {\n")},
	}
	_, err := LoadFS(base, nil, "a")
	if err == nil {
		t.Fatal("LoadFS() should fail")
	}
	msg := err.Error()
	for _, name := range []string{"content/x.yaml", "content/y.yaml"} {
		if !strings.Contains(msg, name) {
			t.Errorf("error %q should mention %s", msg, name)
		}
	}
}

func TestLoadMissingOverrideDir(t *testing.T) {
	if _, err := Load("", "/does/not/exist"); err == nil {
		t.Error("Load() with a missing content dir should fail")
	}
}
