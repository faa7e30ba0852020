// Package schema holds the table and column metadata discovered by the
// one-shot introspection query and used for dynamic completions.
package schema

// Row is a single column reported by the metadata introspection query.
// Rows keep the order the query returned them in and are not deduplicated.
type Row struct {
	Table    string
	Column   string
	DataType string
}

// Snapshot is an immutable view of the loaded metadata. Once published it is
// never mutated, so readers may iterate it without synchronization.
type Snapshot struct {
	Rows   []Row
	Tables []string // distinct table names, first-occurrence order
}

// Empty is the snapshot visible before the background load completes, and
// permanently if the load fails.
var Empty = &Snapshot{}

// NewSnapshot builds a snapshot from introspection rows, deriving the
// distinct table name list.
func NewSnapshot(rows []Row) *Snapshot {
	seen := make(map[string]bool, len(rows))
	var tables []string
	for _, r := range rows {
		if !seen[r.Table] {
			seen[r.Table] = true
			tables = append(tables, r.Table)
		}
	}
	return &Snapshot{Rows: rows, Tables: tables}
}
