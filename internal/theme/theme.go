// Package theme centralizes the lipgloss styles used by the shell so the
// look-and-feel can be swapped in one place.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss.Style values for every styled element.
type Theme struct {
	Name string

	// Prompt line
	Prompt       lipgloss.Style
	Continuation lipgloss.Style

	// SQL syntax highlighting
	SQLKeyword  lipgloss.Style
	SQLString   lipgloss.Style
	SQLNumber   lipgloss.Style
	SQLComment  lipgloss.Style
	SQLOperator lipgloss.Style
	SQLFunction lipgloss.Style
	SQLType     lipgloss.Style

	// Completion menu
	CompletionMatch      lipgloss.Style
	CompletionMeta       lipgloss.Style
	AutocompleteItem     lipgloss.Style
	AutocompleteSelected lipgloss.Style
	AutocompleteBorder   lipgloss.Style

	// General
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	MutedText   lipgloss.Style
}

func newDefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4EC9B0")),
		Continuation: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),

		SQLKeyword: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#569CD6")),
		SQLString: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CE9178")),
		SQLNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B5CEA8")),
		SQLComment: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6A9955")).
			Italic(true),
		SQLOperator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")),
		SQLFunction: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DCDCAA")),
		SQLType: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4EC9B0")),

		CompletionMatch: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F44747")),
		CompletionMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Italic(true),
		AutocompleteItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")),
		AutocompleteSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#264F78")),
		AutocompleteBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")),

		ErrorText: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F44747")),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4EC9B0")),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),
	}
}

func newLightTheme() *Theme {
	t := newDefaultTheme()
	t.Name = "light"
	t.Prompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#267F99"))
	t.SQLKeyword = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0000FF"))
	t.SQLString = lipgloss.NewStyle().Foreground(lipgloss.Color("#A31515"))
	t.SQLNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("#098658"))
	t.SQLComment = lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")).Italic(true)
	t.SQLFunction = lipgloss.NewStyle().Foreground(lipgloss.Color("#795E26"))
	t.SQLType = lipgloss.NewStyle().Foreground(lipgloss.Color("#267F99"))
	t.AutocompleteItem = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E"))
	t.MutedText = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	return t
}

// Themes maps theme names to definitions.
var Themes = map[string]*Theme{
	"default": newDefaultTheme(),
	"light":   newLightTheme(),
}

// Current is the active theme. It is initialized to the default theme.
var Current = Themes["default"]

// Get returns the theme identified by name, falling back to the default
// theme for unknown names.
func Get(name string) *Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
