//go:build duckdb

// Package duckdb provides the DuckDB adapter. It requires cgo, so the real
// implementation is behind the "duckdb" build tag.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sadopc/sqlrepl/internal/adapter"

	_ "github.com/marcboeker/go-duckdb"
)

func init() {
	adapter.Register(&duckdbAdapter{})
}

const metadataQuery = `SELECT table_name, column_name, data_type
FROM information_schema.columns
ORDER BY table_name, ordinal_position`

type duckdbAdapter struct{}

func (a *duckdbAdapter) Name() string { return "duckdb" }

func (a *duckdbAdapter) Connect(ctx context.Context, dsn string) (adapter.Connection, error) {
	dsn = strings.TrimPrefix(dsn, "duckdb://")
	if dsn == ":memory:" {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("duckdb open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("duckdb ping: %w", err)
	}

	name := ":memory:"
	if dsn != "" {
		name = filepath.Base(dsn)
	}
	return &conn{db: db, name: name}, nil
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
func (c *conn) AdapterName() string            { return "duckdb" }
func (c *conn) DatabaseName() string           { return c.name }
