// Package history provides SQLite-backed storage of executed statements
// with fuzzy search over the recent window.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sahilm/fuzzy"

	_ "modernc.org/sqlite"

	"github.com/sadopc/sqlrepl/internal/config"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS history (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	query         TEXT NOT NULL,
	adapter       TEXT,
	database_name TEXT,
	executed_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
	duration_ms   INTEGER,
	row_count     INTEGER,
	is_error      BOOLEAN DEFAULT FALSE
)`

// Entry is a single executed statement in the history log.
type Entry struct {
	ID         int64
	Query      string
	Adapter    string
	Database   string
	ExecutedAt time.Time
	DurationMS int64
	RowCount   int64
	IsError    bool
}

// History stores executed statements in a SQLite database.
type History struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &History{db: db}, nil
}

// New opens the history database at its default location,
// ConfigDir()/history.db.
func New() (*History, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}
	return Open(filepath.Join(dir, "history.db"))
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}

// Add inserts a new history entry.
func (h *History) Add(e Entry) error {
	_, err := h.db.Exec(
		`INSERT INTO history (query, adapter, database_name, executed_at, duration_ms, row_count, is_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Query, e.Adapter, e.Database, e.ExecutedAt, e.DurationMS, e.RowCount, e.IsError,
	)
	if err != nil {
		return fmt.Errorf("history add: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first, limited to limit.
func (h *History) Recent(limit int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, query, adapter, database_name, executed_at, duration_ms, row_count, is_error
		 FROM history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Query, &e.Adapter, &e.Database,
			&e.ExecutedAt, &e.DurationMS, &e.RowCount, &e.IsError); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// queries adapts a history entry slice to fuzzy.Source.
type queries []Entry

func (q queries) String(i int) string { return q[i].Query }
func (q queries) Len() int            { return len(q) }

// Search fuzzy-matches term against the window most recent entries and
// returns them best match first. An empty term falls back to Recent.
func (h *History) Search(term string, window int) ([]Entry, error) {
	recent, err := h.Recent(window)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return recent, nil
	}

	matches := fuzzy.FindFrom(term, queries(recent))
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, recent[m.Index])
	}
	return out, nil
}
