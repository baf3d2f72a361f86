package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB holding the guide's full-text index.
type DB struct {
	*sql.DB
}

// OpenMemory creates an in-memory SQLite database with the schema applied.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema.
const schema = `
CREATE VIRTUAL TABLE IF NOT EXISTS section_index USING fts5(
    section_id UNINDEXED,
    title,
    category UNINDEXED,
    body,
    tokenize = 'unicode61 remove_diacritics 2'
);
`
