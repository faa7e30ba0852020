// Package adapter defines the query-execution capability the shell and the
// completion engine consume, and a registry of database drivers behind it.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Adapter creates database connections.
type Adapter interface {
	Connect(ctx context.Context, dsn string) (Connection, error)
	Name() string
}

// Connection is an active database connection.
type Connection interface {
	// Execute runs a single SQL statement and returns its result. Failures
	// reported by the database are returned as *QueryError; any other error
	// is a contract violation, not an execution failure.
	Execute(ctx context.Context, query string) (*Result, error)

	// MetadataQuery returns the dialect's table/column introspection
	// statement. Running it through Execute yields rows of
	// (table name, column name, data type).
	MetadataQuery() string

	Ping(ctx context.Context) error
	Close() error

	AdapterName() string
	DatabaseName() string
}

// Result holds the outcome of a statement execution. Rows are rendered to
// strings at the adapter boundary so callers never deal with driver types.
type Result struct {
	Columns  []string
	Rows     [][]string
	RowCount int64
	Duration time.Duration
	Message  string // set for non-row statements, e.g. "3 rows affected"
}

// QueryError is a domain-level execution failure: the statement reached the
// database and was rejected, or the connection dropped underneath it.
// Contract violations (nil connection, misuse of an adapter) are never
// wrapped in it.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string { return e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

// IsQueryError reports whether err is a domain-level execution failure.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// Registry holds registered adapters by name.
var Registry = map[string]Adapter{}

// Register adds an adapter to the global registry.
func Register(a Adapter) {
	Registry[a.Name()] = a
}

// Get looks up a registered adapter.
func Get(name string) (Adapter, error) {
	a, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown adapter: %s (available: %s)", name, Available())
	}
	return a, nil
}

// Available returns the registered adapter names, sorted, comma-separated.
func Available() string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
