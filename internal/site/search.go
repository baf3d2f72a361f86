package site

import (
	"encoding/json"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/bpguide/internal/guide"
)

// SearchEntry represents a single searchable section of the guide.
type SearchEntry struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// summaryLen bounds the summary shown in static search results.
const summaryLen = 160

// BuildSearchIndex extracts the text of every section, with all accordions
// expanded, in catalog order.
func BuildSearchIndex(r *Renderer) ([]SearchEntry, error) {
	var entries []SearchEntry
	for _, s := range r.reg.Catalog().Sections() {
		text, err := r.PlainText(s.ID)
		if err != nil {
			return nil, err
		}
		c := r.reg.Resolve(s.ID)
		entries = append(entries, SearchEntry{
			ID:       s.ID,
			Path:     PageFile(s.ID),
			Title:    s.Title,
			Category: string(s.Category),
			Summary:  summarize(c, text),
			Content:  text,
		})
	}
	return entries, nil
}

// PlainText returns the visible text of a section's content as if every
// accordion were open.
func (r *Renderer) PlainText(id string) (string, error) {
	rs, ok := r.sections[id]
	if !ok {
		var err error
		if rs, err = r.renderSection(r.reg.Resolve(id)); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	sb.WriteString(rs.content.Title)
	sb.WriteString(" ")
	sb.WriteString(rs.content.Lead)
	for _, b := range rs.blocks {
		sb.WriteString(" ")
		sb.WriteString(b.Title)
		sb.WriteString(" ")
		sb.WriteString(extractText(string(b.Caption)))
		sb.WriteString(" ")
		sb.WriteString(extractText(string(b.Body)))
		for _, c := range b.Cards {
			sb.WriteString(" " + c.Title + " " + c.Text)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " "), nil
}

// extractText strips tags from an HTML fragment, keeping text nodes.
func extractText(fragment string) string {
	if fragment == "" {
		return ""
	}
	z := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "script" || string(name) == "style" {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); (string(name) == "script" || string(name) == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// summarize prefers the lead paragraph and falls back to the start of the text.
func summarize(c guide.Content, text string) string {
	s := strings.TrimSpace(c.Lead)
	if s == "" {
		s = strings.TrimSpace(strings.TrimPrefix(text, c.Title))
	}
	if r := []rune(s); len(r) > summaryLen {
		s = strings.TrimSpace(string(r[:summaryLen])) + "..."
	}
	return s
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
