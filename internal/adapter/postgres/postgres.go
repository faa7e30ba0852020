// Package postgres provides the PostgreSQL adapter backed by pgx.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sadopc/sqlrepl/internal/adapter"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func init() {
	adapter.Register(&pgAdapter{})
}

const metadataQuery = `SELECT table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
ORDER BY table_name, ordinal_position`

type pgAdapter struct{}

func (a *pgAdapter) Name() string { return "postgres" }

func (a *pgAdapter) Connect(ctx context.Context, dsn string) (adapter.Connection, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return &conn{db: db, name: databaseFromDSN(dsn)}, nil
}

// databaseFromDSN extracts the database name from a postgres:// URL path.
func databaseFromDSN(dsn string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(dsn, "postgresql://"), "postgres://")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		name := trimmed[i+1:]
		if j := strings.IndexByte(name, '?'); j >= 0 {
			name = name[:j]
		}
		return name
	}
	return ""
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
func (c *conn) AdapterName() string            { return "postgres" }
func (c *conn) DatabaseName() string           { return c.name }
