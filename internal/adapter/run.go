package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// rowStatements are statement prefixes expected to produce a row set.
var rowStatements = []string{
	"SELECT", "WITH", "SHOW", "DESCRIBE", "DESC", "EXPLAIN", "PRAGMA",
	"VALUES", "TABLE",
}

func returnsRows(query string) bool {
	head := strings.ToUpper(strings.TrimSpace(query))
	for _, kw := range rowStatements {
		if strings.HasPrefix(head, kw) {
			return true
		}
	}
	return false
}

// Run executes query against a database/sql handle and converts the outcome
// to a Result. Every database-reported failure comes back as *QueryError.
// All database/sql-backed adapters share this path.
func Run(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	start := time.Now()

	if !returnsRows(query) {
		res, err := db.ExecContext(ctx, query)
		if err != nil {
			return nil, &QueryError{Query: query, Err: err}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			affected = -1
		}
		msg := "OK"
		if affected >= 0 {
			msg = fmt.Sprintf("%d rows affected", affected)
		}
		return &Result{
			RowCount: affected,
			Duration: time.Since(start),
			Message:  msg,
		}, nil
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	var out [][]string
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{Query: query, Err: err}
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	return &Result{
		Columns:  cols,
		Rows:     out,
		RowCount: int64(len(out)),
		Duration: time.Since(start),
	}, nil
}

// renderValue converts a scanned driver value to its display string.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
