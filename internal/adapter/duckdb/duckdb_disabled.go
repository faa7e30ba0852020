//go:build !duckdb

// Package duckdb provides the DuckDB adapter. It requires cgo, so the real
// implementation is behind the "duckdb" build tag; this stub keeps the
// adapter name registered and explains how to enable it.
package duckdb

import (
	"context"
	"errors"

	"github.com/sadopc/sqlrepl/internal/adapter"
)

func init() {
	adapter.Register(&duckdbAdapter{})
}

type duckdbAdapter struct{}

func (a *duckdbAdapter) Name() string { return "duckdb" }

func (a *duckdbAdapter) Connect(ctx context.Context, dsn string) (adapter.Connection, error) {
	return nil, errors.New("duckdb support not compiled in; rebuild with -tags duckdb")
}
