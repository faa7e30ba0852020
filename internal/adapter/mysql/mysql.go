// Package mysql provides the MySQL adapter backed by go-sql-driver.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sadopc/sqlrepl/internal/adapter"

	_ "github.com/go-sql-driver/mysql"
)

func init() {
	adapter.Register(&mysqlAdapter{})
}

// metadataQuery is scoped to the current database so suggestions do not leak
// system schemas.
const metadataQuery = `SELECT table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema = DATABASE()
ORDER BY table_name, ordinal_position`

type mysqlAdapter struct{}

func (a *mysqlAdapter) Name() string { return "mysql" }

func (a *mysqlAdapter) Connect(ctx context.Context, dsn string) (adapter.Connection, error) {
	dsn = strings.TrimPrefix(dsn, "mysql://")

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return &conn{db: db, name: databaseFromDSN(dsn)}, nil
}

// databaseFromDSN extracts the database name from a go-sql-driver DSN
// (user:pass@tcp(host:port)/dbname?params).
func databaseFromDSN(dsn string) string {
	i := strings.LastIndexByte(dsn, '/')
	if i < 0 {
		return ""
	}
	name := dsn[i+1:]
	if j := strings.IndexByte(name, '?'); j >= 0 {
		name = name[:j]
	}
	return name
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
func (c *conn) AdapterName() string            { return "mysql" }
func (c *conn) DatabaseName() string           { return c.name }
