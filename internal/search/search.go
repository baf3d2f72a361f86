// Package search keeps a full-text index of the guide in SQLite FTS5.
package search

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/ziadkadry99/bpguide/internal/db"
	"github.com/ziadkadry99/bpguide/internal/site"
)

// Document is one indexed section.
type Document struct {
	SectionID string
	Title     string
	Category  string
	Body      string
}

// Hit is one ranked search result.
type Hit struct {
	SectionID   string  `json:"section_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Snippet     string  `json:"snippet"`
	SnippetHTML string  `json:"snippet_html"`
	Rank        float64 `json:"rank"`
}

const (
	DefaultLimit = 8
	MaxLimit     = 20

	markOpen  = "\x02"
	markClose = "\x03"
)

// Index answers keyword queries over the guide.
type Index struct {
	db *db.DB
}

// New wraps an opened database.
func New(d *db.DB) *Index {
	return &Index{db: d}
}

// Build opens an in-memory index and fills it with every section the
// renderer knows about.
func Build(ctx context.Context, r *site.Renderer) (*Index, error) {
	entries, err := site.BuildSearchIndex(r)
	if err != nil {
		return nil, err
	}
	d, err := db.OpenMemory()
	if err != nil {
		return nil, err
	}
	idx := New(d)
	docs := make([]Document, len(entries))
	for i, e := range entries {
		docs[i] = Document{SectionID: e.ID, Title: e.Title, Category: e.Category, Body: e.Content}
	}
	if err := idx.Replace(ctx, docs); err != nil {
		d.Close()
		return nil, err
	}
	return idx, nil
}

// Close releases the database.
func (x *Index) Close() error { return x.db.Close() }

// Replace swaps the indexed documents in a single transaction.
func (x *Index) Replace(ctx context.Context, docs []Document) error {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning index transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM section_index`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO section_index (section_id, title, category, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range docs {
		if _, err := stmt.ExecContext(ctx, d.SectionID, d.Title, d.Category, d.Body); err != nil {
			return fmt.Errorf("indexing %s: %w", d.SectionID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of indexed documents.
func (x *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := x.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM section_index`).Scan(&n)
	return n, err
}

// Search returns up to limit hits for query, best first. Titles weigh ten
// times more than body text. A query with no searchable terms returns no hits.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	match := ftsQuery(query)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	rows, err := x.db.QueryContext(ctx, `
		SELECT section_id, title, category,
		       snippet(section_index, 3, char(2), char(3), '…', 12),
		       bm25(section_index, 0.0, 10.0, 0.0, 1.0) AS rank
		FROM section_index
		WHERE section_index MATCH ?
		ORDER BY rank
		LIMIT ?`, match, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		var raw string
		if err := rows.Scan(&h.SectionID, &h.Title, &h.Category, &raw, &h.Rank); err != nil {
			return nil, err
		}
		h.Snippet = strings.NewReplacer(markOpen, "", markClose, "").Replace(raw)
		h.SnippetHTML = strings.NewReplacer(markOpen, "<mark>", markClose, "</mark>").Replace(html.EscapeString(raw))
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// ftsQuery turns free text into an FTS5 expression: every word becomes a
// quoted prefix term and all terms must match.
func ftsQuery(q string) string {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, `"`+strings.ToLower(w)+`"*`)
	}
	return strings.Join(terms, " ")
}
