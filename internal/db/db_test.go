package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM section_index").Scan(&count); err != nil {
		t.Fatalf("section_index: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestFullTextMatch(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO section_index (section_id, title, category, body) VALUES (?, ?, ?, ?)`,
		"cost-bp", "Cost BP", "bp-types", "Cost BPs track budget and commitments"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var id string
	if err := d.QueryRow(`SELECT section_id FROM section_index WHERE section_index MATCH ?`, "budget").Scan(&id); err != nil {
		t.Fatalf("match: %v", err)
	}
	if id != "cost-bp" {
		t.Errorf("section_id = %q, want cost-bp", id)
	}
}
