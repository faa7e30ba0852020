package highlight

import (
	"regexp"
	"strings"
	"testing"
)

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestHighlightPreservesText(t *testing.T) {
	h := New()

	tests := []string{
		"SELECT * FROM users WHERE id = 1;",
		"select lower(name), 3.14 from t -- trailing comment",
		"INSERT INTO t VALUES ('a string with SELECT inside')",
		"",
		"not sql at all ~~~",
	}
	for _, sql := range tests {
		if got := stripANSI(h.Highlight(sql)); got != sql {
			t.Errorf("Highlight(%q) altered text: %q", sql, got)
		}
	}
}

func TestHighlightKeepsNewlines(t *testing.T) {
	h := New()
	sql := "SELECT *\nFROM users\nWHERE id = 1"
	got := stripANSI(h.Highlight(sql))
	if got != sql {
		t.Errorf("multi-line text altered: %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("newlines not preserved: %q", got)
	}
}
