package search

import (
	"context"
	"strings"
	"testing"

	"github.com/ziadkadry99/bpguide/internal/db"
	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/site"
)

func newIndex(t *testing.T, docs []Document) *Index {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	idx := New(d)
	t.Cleanup(func() { idx.Close() })
	if err := idx.Replace(context.Background(), docs); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	return idx
}

func TestFTSQuery(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"budget", `"budget"*`},
		{"Cost BP", `"cost"* "bp"*`},
		{`"quoted" OR (drop)`, `"quoted"* "or"* "drop"*`},
		{"  --  ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ftsQuery(tt.in); got != tt.want {
			t.Errorf("ftsQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearchRanksTitleFirst(t *testing.T) {
	idx := newIndex(t, []Document{
		{SectionID: "faq", Title: "FAQ", Category: "resources", Body: "Questions about workflow and the cost sheet."},
		{SectionID: "cost-bp", Title: "Cost BP", Category: "bp-types", Body: "Financial engine of Unifier."},
	})

	hits, err := idx.Search(context.Background(), "cost", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].SectionID != "cost-bp" {
		t.Errorf("first hit = %q, want cost-bp", hits[0].SectionID)
	}
}

func TestSearchSnippetEscaping(t *testing.T) {
	idx := newIndex(t, []Document{
		{SectionID: "x", Title: "X", Body: "Use <b>Deployment</b> & testing environments."},
	})
	hits, err := idx.Search(context.Background(), "deploy", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	h := hits[0].SnippetHTML
	if !strings.Contains(h, "<mark>Deployment</mark>") {
		t.Errorf("snippet should mark the match: %q", h)
	}
	if !strings.Contains(h, "&lt;b&gt;") || !strings.Contains(h, "&amp;") {
		t.Errorf("snippet should escape markup: %q", h)
	}
	if strings.ContainsAny(hits[0].Snippet, "\x02\x03") {
		t.Errorf("plain snippet should not carry markers: %q", hits[0].Snippet)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := newIndex(t, nil)
	hits, err := idx.Search(context.Background(), "  ", 5)
	if err != nil || hits != nil {
		t.Errorf("Search(blank) = %v, %v; want nil, nil", hits, err)
	}
}

func TestReplaceClearsOldDocuments(t *testing.T) {
	ctx := context.Background()
	idx := newIndex(t, []Document{{SectionID: "a", Title: "A", Body: "alpha"}})
	if err := idx.Replace(ctx, []Document{{SectionID: "b", Title: "B", Body: "beta"}}); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	n, err := idx.Count(ctx)
	if err != nil || n != 1 {
		t.Errorf("Count() = %d, %v; want 1", n, err)
	}
	hits, err := idx.Search(ctx, "alpha", 5)
	if err != nil || len(hits) != 0 {
		t.Errorf("old document still found: %v, %v", hits, err)
	}
}

func TestBuildFromGuide(t *testing.T) {
	reg, err := guide.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	r, err := site.NewRenderer(reg, site.Options{Title: "Guide"})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	idx, err := Build(ctx, r)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer idx.Close()

	n, err := idx.Count(ctx)
	if err != nil || n != 20 {
		t.Errorf("Count() = %d, %v; want 20", n, err)
	}

	hits, err := idx.Search(ctx, "uDesigner validation", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected hits for uDesigner validation")
	}
	found := false
	for _, h := range hits {
		if h.SectionID == "foundations" {
			found = true
		}
	}
	if !found {
		t.Errorf("foundations not in hits: %+v", hits)
	}
}
