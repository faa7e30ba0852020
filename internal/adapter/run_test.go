package adapter

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)`,
		`INSERT INTO users (id, name) VALUES (1, 'alice'), (2, NULL)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	return db
}

func TestRunSelect(t *testing.T) {
	db := openTestDB(t)

	res, err := Run(context.Background(), db, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Columns) != 2 || res.Columns[0] != "id" {
		t.Errorf("columns = %v", res.Columns)
	}
	if res.RowCount != 2 || len(res.Rows) != 2 {
		t.Fatalf("rows = %v", res.Rows)
	}
	if res.Rows[0][1] != "alice" {
		t.Errorf("cell = %q, want alice", res.Rows[0][1])
	}
	if res.Rows[1][1] != "NULL" {
		t.Errorf("cell = %q, want NULL", res.Rows[1][1])
	}
}

func TestRunExec(t *testing.T) {
	db := openTestDB(t)

	res, err := Run(context.Background(), db, "UPDATE users SET name = 'bob' WHERE id = 2")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Columns) != 0 {
		t.Errorf("exec statement produced columns: %v", res.Columns)
	}
	if res.Message != "1 rows affected" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestRunFailureIsQueryError(t *testing.T) {
	db := openTestDB(t)

	_, err := Run(context.Background(), db, "SELECT nope FROM missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsQueryError(err) {
		t.Errorf("error %v is not a *QueryError", err)
	}

	var qe *QueryError
	if !errors.As(err, &qe) || qe.Query == "" {
		t.Errorf("query not recorded on error: %+v", qe)
	}
}

func TestReturnsRows(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"SELECT 1", true},
		{"  select 1", true},
		{"WITH t AS (SELECT 1) SELECT * FROM t", true},
		{"PRAGMA table_info(users)", true},
		{"EXPLAIN SELECT 1", true},
		{"INSERT INTO users VALUES (3, 'c')", false},
		{"CREATE TABLE t (id INT)", false},
		{"DROP TABLE t", false},
	}
	for _, tt := range tests {
		if got := returnsRows(tt.query); got != tt.want {
			t.Errorf("returnsRows(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestGetUnknownAdapter(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown adapter")
	}
}
