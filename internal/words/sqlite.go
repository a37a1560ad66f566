// internal/words/sqlite.go
//
// SQLite-backed dictionary storage.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Creating the words table on first use (idempotent).
//   - Importing a cleaned Set and loading it back, filtered by length.
//
// Only the dictionary lives here; no game state is stored.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS words (
	word   TEXT PRIMARY KEY,
	length INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS words_length ON words(length);`

// OpenDB opens (and creates if missing) a SQLite database file and ensures the schema.
func OpenDB(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// StoreDB inserts every word of s, ignoring ones already present.
// Returns the number of new rows.
func StoreDB(ctx context.Context, db *sql.DB, s *Set) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range s.list {
		res, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

// LoadDB reads every stored word of the given length.
func LoadDB(ctx context.Context, db *sql.DB, length int) (*Set, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words WHERE length = ? ORDER BY word`, length)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s := NewSet(length, out)
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w of length %d in database", ErrEmpty, length)
	}
	return s, nil
}
