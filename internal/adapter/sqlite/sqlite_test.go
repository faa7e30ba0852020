package sqlite

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/sqlrepl/internal/adapter"
	"github.com/sadopc/sqlrepl/internal/completion"
)

func openTestConn(t *testing.T) adapter.Connection {
	t.Helper()
	a, err := adapter.Get("sqlite")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := a.Connect(context.Background(), ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	ddl := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER, total REAL)`,
	}
	for _, s := range ddl {
		if _, err := conn.Execute(context.Background(), s); err != nil {
			t.Fatal(err)
		}
	}
	return conn
}

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sqlite:///tmp/x.db", "/tmp/x.db"},
		{"file:x.db", "x.db"},
		{":memory:", ":memory:"},
		{"plain.db", "plain.db"},
	}
	for _, tt := range tests {
		if got := normalizeDSN(tt.in); got != tt.want {
			t.Errorf("normalizeDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetadataQuery(t *testing.T) {
	conn := openTestConn(t)

	res, err := conn.Execute(context.Background(), conn.MetadataQuery())
	if err != nil {
		t.Fatal(err)
	}

	// (table, column, type) triples in table order, column order within.
	if len(res.Rows) != 6 {
		t.Fatalf("got %d metadata rows, want 6: %v", len(res.Rows), res.Rows)
	}
	first := res.Rows[0]
	if first[0] != "orders" || first[1] != "id" {
		t.Errorf("first row = %v, want orders/id", first)
	}
	for _, row := range res.Rows {
		if len(row) != 3 {
			t.Fatalf("metadata row has %d fields: %v", len(row), row)
		}
	}
}

func TestExecuteErrorIsDomainError(t *testing.T) {
	conn := openTestConn(t)

	_, err := conn.Execute(context.Background(), "SELECT * FROM missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !adapter.IsQueryError(err) {
		t.Errorf("error %v is not a *QueryError", err)
	}
}

// TestEngineAgainstLiveSchema exercises the whole pipeline: background
// introspection over a real connection feeding the completion engine.
func TestEngineAgainstLiveSchema(t *testing.T) {
	conn := openTestConn(t)
	engine := completion.NewEngine("sqlite", conn)

	// Wait for the background load to publish.
	deadline := time.Now().Add(2 * time.Second)
	for len(engine.Snapshot().Tables) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("schema load did not complete")
		}
		time.Sleep(time.Millisecond)
	}

	text := "SELECT em FROM users"
	cands := engine.Complete(text, 9)
	for _, c := range cands {
		if c.Label == "email" && strings.HasPrefix(c.Meta, "COLUMN (") && strings.Contains(c.Meta, "users") {
			return
		}
	}
	t.Fatalf("email column candidate missing: %v", cands)
}
