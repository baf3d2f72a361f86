package guide

import (
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	c, err := NewCatalog(testSections())
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	authored := []Content{{
		SectionID: "intro",
		Title:     "Welcome",
		Blocks:    []Block{{Kind: BlockProse, Markdown: "Hello."}},
	}}
	r, err := NewRegistry(c, authored, "intro")
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return r
}

func TestResolveAuthored(t *testing.T) {
	r := testRegistry(t)
	got := r.Resolve("intro")
	if got.Title != "Welcome" || got.Placeholder {
		t.Errorf("Resolve(intro) = %+v, want authored content", got)
	}
}

func TestResolvePlaceholder(t *testing.T) {
	r := testRegistry(t)
	got := r.Resolve("cost")
	if !got.Placeholder {
		t.Fatal("Resolve(cost) should be a placeholder")
	}
	if got.Title != "Cost" || got.SectionID != "cost" {
		t.Errorf("placeholder = %q/%q, want cost/Cost", got.SectionID, got.Title)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].Title != PlaceholderTitle {
		t.Fatalf("placeholder blocks = %+v", got.Blocks)
	}
	if got.Blocks[0].Icon != "dollar-sign" {
		t.Errorf("placeholder icon = %q, want dollar-sign", got.Blocks[0].Icon)
	}
	if !strings.Contains(got.Blocks[0].Markdown, "Detailed information about Cost will be added here.") {
		t.Errorf("placeholder text = %q", got.Blocks[0].Markdown)
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	r := testRegistry(t)
	got := r.Resolve("does-not-exist")
	if got.SectionID != "intro" {
		t.Errorf("Resolve(unknown) = %q, want intro", got.SectionID)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	c, err := NewCatalog(testSections())
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}

	if _, err := NewRegistry(c, nil, "missing"); err == nil {
		t.Error("unknown default should fail")
	}
	orphan := []Content{{SectionID: "ghost", Title: "Ghost"}}
	if _, err := NewRegistry(c, orphan, "intro"); err == nil {
		t.Error("content without a descriptor should fail")
	}
	dup := []Content{{SectionID: "faq", Title: "A"}, {SectionID: "faq", Title: "B"}}
	if _, err := NewRegistry(c, dup, "intro"); err == nil {
		t.Error("duplicate content should fail")
	}
	bad := []Content{{SectionID: "faq", Title: "A", Blocks: []Block{{Kind: "video"}}}}
	if _, err := NewRegistry(c, bad, "intro"); err == nil {
		t.Error("invalid block should fail")
	}
}

func TestAuthoredIDs(t *testing.T) {
	r := testRegistry(t)
	ids := r.AuthoredIDs()
	if len(ids) != 1 || ids[0] != "intro" {
		t.Errorf("AuthoredIDs() = %v, want [intro]", ids)
	}
	if _, ok := r.Authored("cost"); ok {
		t.Error("Authored(cost) should be false")
	}
}
