// Package sqlite provides the SQLite adapter backed by modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sadopc/sqlrepl/internal/adapter"

	_ "modernc.org/sqlite"
)

func init() {
	adapter.Register(&sqliteAdapter{})
}

// metadataQuery lists every column of every user table. SQLite has no
// information_schema; pragma_table_info as a table-valued function is the
// equivalent catalog.
const metadataQuery = `SELECT m.name, ti.name, ti.type
FROM sqlite_master AS m
JOIN pragma_table_info(m.name) AS ti
WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%'
ORDER BY m.name, ti.cid`

type sqliteAdapter struct{}

func (a *sqliteAdapter) Name() string { return "sqlite" }

func (a *sqliteAdapter) Connect(ctx context.Context, dsn string) (adapter.Connection, error) {
	dsn = normalizeDSN(dsn)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	name := dsn
	if dsn != ":memory:" {
		name = filepath.Base(dsn)
	}
	return &conn{db: db, name: name}, nil
}

// normalizeDSN strips common SQLite URI prefixes.
func normalizeDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	return strings.TrimPrefix(dsn, "file:")
}

type conn struct {
	db   *sql.DB
	name string
}

func (c *conn) Execute(ctx context.Context, query string) (*adapter.Result, error) {
	return adapter.Run(ctx, c.db, query)
}

func (c *conn) MetadataQuery() string          { return metadataQuery }
func (c *conn) Ping(ctx context.Context) error { return c.db.PingContext(ctx) }
func (c *conn) Close() error                   { return c.db.Close() }
func (c *conn) AdapterName() string            { return "sqlite" }
func (c *conn) DatabaseName() string           { return c.name }
