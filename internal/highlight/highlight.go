// Package highlight renders SQL text with ANSI colours. It tokenises with
// chroma and styles each token with the active theme.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sqlrepl/internal/theme"
)

// Highlighter colours SQL text using a chroma lexer.
type Highlighter struct {
	lexer chroma.Lexer
}

// New creates a Highlighter using the PostgreSQL lexer, falling back to the
// generic SQL lexer when unavailable.
func New() *Highlighter {
	l := lexers.Get("PostgreSQL")
	if l == nil {
		l = lexers.Get("SQL")
	}
	if l == nil {
		l = lexers.Fallback
	}
	return &Highlighter{lexer: chroma.Coalesce(l)}
}

// Highlight returns sql with each token styled per the active theme.
// Newlines pass through unstyled so multi-line statements render correctly.
func (h *Highlighter) Highlight(sql string) string {
	it, err := h.lexer.Tokenise(nil, sql)
	if err != nil {
		return sql
	}

	th := theme.Current
	var b strings.Builder
	b.Grow(len(sql) * 2)

	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		style, ok := styleFor(tok.Type, th)
		if !ok {
			b.WriteString(tok.Value)
			continue
		}
		for i, line := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}

	return b.String()
}

// styleFor maps a chroma token type to a theme style. The second return is
// false when the token passes through unstyled.
func styleFor(tt chroma.TokenType, th *theme.Theme) (lipgloss.Style, bool) {
	switch {
	// KeywordType is checked before the keyword category so SQL types
	// (INT, VARCHAR, ...) get their own colour.
	case tt == chroma.KeywordType:
		return th.SQLType, true
	case tt == chroma.NameFunction:
		return th.SQLFunction, true
	case tt.InCategory(chroma.Keyword):
		return th.SQLKeyword, true
	case tt.InSubCategory(chroma.LiteralString):
		return th.SQLString, true
	case tt.InSubCategory(chroma.LiteralNumber):
		return th.SQLNumber, true
	case tt.InCategory(chroma.Comment):
		return th.SQLComment, true
	case tt.InCategory(chroma.Operator):
		return th.SQLOperator, true
	default:
		return lipgloss.Style{}, false
	}
}
