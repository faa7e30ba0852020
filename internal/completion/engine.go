// Package completion implements the autocompletion engine: a static catalog
// of keywords and functions, a schema index populated once in the background,
// and a prefix matcher that renders ordered candidates for a text front end.
package completion

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sadopc/sqlrepl/internal/adapter"
	"github.com/sadopc/sqlrepl/internal/schema"
	"github.com/sadopc/sqlrepl/internal/theme"
)

// Executor is the query-execution capability the engine consumes. It is the
// subset of adapter.Connection the background loader needs.
type Executor interface {
	Execute(ctx context.Context, query string) (*adapter.Result, error)
	MetadataQuery() string
}

// Engine produces completion candidates for SQL input. The static catalog is
// fixed at construction; table and column suggestions appear once the
// background schema load has published its snapshot.
//
// Complete never blocks on the loader: a call observes either the empty
// pre-load snapshot or the fully published one, never an intermediate state.
type Engine struct {
	static []Suggestion // keywords then functions, in catalog order
	snap   atomic.Pointer[schema.Snapshot]
}

// NewEngine builds an engine for the given dialect and starts the one-shot
// background schema load on exec. Construction does not block; the engine is
// immediately usable with keyword and function suggestions only. A nil exec
// skips the load and leaves the schema index empty.
func NewEngine(dialect string, exec Executor) *Engine {
	var static []Suggestion
	for _, kw := range keywordsForDialect(dialect) {
		static = append(static, Suggestion{Label: kw, Kind: KindKeyword})
	}
	for _, fn := range functionsForDialect(dialect) {
		static = append(static, Suggestion{Label: fn, Kind: KindFunction})
	}

	e := &Engine{static: static}
	e.snap.Store(schema.Empty)

	if exec != nil {
		go e.loadSchema(exec)
	}
	return e
}

// loadSchema runs the metadata introspection query exactly once and publishes
// the result as an atomically swapped immutable snapshot. A query-execution
// failure abandons the load silently: the session degrades to static
// suggestions only. Anything else is a contract violation and propagates.
func (e *Engine) loadSchema(exec Executor) {
	res, err := exec.Execute(context.Background(), exec.MetadataQuery())
	if err != nil {
		if adapter.IsQueryError(err) {
			return
		}
		panic(fmt.Sprintf("completion: schema load: %v", err))
	}

	rows := make([]schema.Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, schema.Row{Table: r[0], Column: r[1], DataType: r[2]})
	}
	e.snap.Store(schema.NewSnapshot(rows))
}

// Snapshot returns the schema index view current at the time of the call.
func (e *Engine) Snapshot() *schema.Snapshot {
	return e.snap.Load()
}

// publish replaces the schema index snapshot. Tests use it to simulate a
// finished load.
func (e *Engine) publish(snap *schema.Snapshot) {
	e.snap.Store(snap)
}

// Complete returns the rendered candidates for the given input text and
// cursor offset (in characters). Candidates whose label starts with the word
// before the cursor, compared case-insensitively, are emitted in catalog
// order: keywords, functions, then tables and columns in schema index order.
// An empty current word yields no candidates.
func (e *Engine) Complete(text string, cursor int) []Candidate {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	word := LastWord(string(runes[:cursor]))
	if word == "" {
		return nil
	}

	upper := strings.ToUpper(word)
	wordLen := utf8.RuneCountInString(word)
	snap := e.snap.Load()

	var out []Candidate
	emit := func(s Suggestion) {
		if !strings.HasPrefix(strings.ToUpper(s.Label), upper) {
			return
		}
		out = append(out, Candidate{
			Label:   s.Label,
			Offset:  -wordLen,
			Display: renderDisplay(s.Label, wordLen),
			Meta:    s.Meta(),
		})
	}

	for _, s := range e.static {
		emit(s)
	}
	for _, t := range snap.Tables {
		emit(Suggestion{Label: t, Kind: KindTable})
	}
	for _, r := range snap.Rows {
		// Deliberately permissive: the table name may appear anywhere in
		// the input, not only as a qualified reference.
		if !strings.Contains(text, r.Table) {
			continue
		}
		emit(Suggestion{
			Label:  r.Column,
			Kind:   KindColumn,
			Detail: r.DataType + ", " + r.Table,
		})
	}

	return out
}

// renderDisplay returns label with its first n runes emphasised using the
// active theme. ESC bytes are stripped first so schema identifiers cannot
// smuggle terminal control sequences into the display.
func renderDisplay(label string, n int) string {
	label = strings.ReplaceAll(label, "\x1b", "")
	runes := []rune(label)
	if n > len(runes) {
		n = len(runes)
	}
	return theme.Current.CompletionMatch.Render(string(runes[:n])) + string(runes[n:])
}
