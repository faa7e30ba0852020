// Package repl implements the interactive session: a prompt with inline
// autocompletion, statement accumulation until a terminating semicolon, and
// rendered query results printed to scrollback.
package repl

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sqlrepl/internal/adapter"
	"github.com/sadopc/sqlrepl/internal/completion"
	"github.com/sadopc/sqlrepl/internal/highlight"
	"github.com/sadopc/sqlrepl/internal/history"
	"github.com/sadopc/sqlrepl/internal/render"
	"github.com/sadopc/sqlrepl/internal/theme"
)

const (
	prompt             = "sqlrepl> "
	continuationPrompt = "   ...> "
)

// Options configures a session.
type Options struct {
	Conn    adapter.Connection
	Engine  *completion.Engine
	History *history.History // optional
	Format  render.Format
}

// execDoneMsg reports a finished statement execution.
type execDoneMsg struct {
	query string
	res   *adapter.Result
	err   error
}

// Model is the Bubble Tea model for the interactive session. It runs inline
// (no alternate screen): results scroll by above the prompt.
type Model struct {
	input  textinput.Model
	drop   dropdown
	hl     *highlight.Highlighter
	conn   adapter.Connection
	engine *completion.Engine
	hist   *history.History
	format render.Format

	pending  []string // continuation lines of the statement in progress
	running  bool
	quitting bool
	fatal    error
}

// New creates a session model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = theme.Current.Prompt.Render(prompt)
	ti.Placeholder = ""
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		input:  ti,
		hl:     highlight.New(),
		conn:   opts.Conn,
		engine: opts.Engine,
		hist:   opts.History,
		format: opts.Format,
	}
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error { return m.fatal }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case execDoneMsg:
		return m.handleExecDone(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.running {
		// No cancellation path; keystrokes are dropped until the result
		// arrives.
		return m, nil
	}

	if m.drop.visible {
		switch msg.String() {
		case "up", "ctrl+p":
			m.drop.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.drop.move(1)
			return m, nil
		case "tab", "enter":
			if c, ok := m.drop.current(); ok {
				value, pos := applyCandidate(m.input.Value(), m.input.Position(), c)
				m.input.SetValue(value)
				m.input.SetCursor(pos)
			}
			m.drop.dismiss()
			return m, nil
		case "esc":
			m.drop.dismiss()
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c":
		// Abandon the statement in progress, keep the session.
		m.pending = nil
		m.drop.dismiss()
		m.input.SetValue("")
		m.input.Prompt = theme.Current.Prompt.Render(prompt)
		return m, nil

	case "ctrl+d":
		if m.input.Value() == "" && len(m.pending) == 0 {
			m.quitting = true
			return m, tea.Sequence(tea.Println("Bye!"), tea.Quit)
		}

	case "enter":
		return m.submitLine()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshCompletions()
	return m, cmd
}

// refreshCompletions recomputes the dropdown from the current buffer and
// cursor position.
func (m *Model) refreshCompletions() {
	text, cursor := m.completionContext()
	m.drop.setItems(m.engine.Complete(text, cursor))
}

// completionContext returns the full statement text (accumulated lines plus
// the line being edited) and the cursor offset in characters.
func (m *Model) completionContext() (string, int) {
	prefix := strings.Join(m.pending, "\n")
	if prefix != "" {
		prefix += "\n"
	}
	return prefix + m.input.Value(), utf8.RuneCountInString(prefix) + m.input.Position()
}

// submitLine handles enter: accumulate a continuation line, run a backslash
// command, or execute the completed statement.
func (m Model) submitLine() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	full := strings.Join(append(m.pending, line), "\n")
	trimmed := strings.TrimSpace(full)

	m.drop.dismiss()

	if trimmed == "" {
		m.input.SetValue("")
		return m, nil
	}

	if strings.HasPrefix(trimmed, `\`) {
		m.pending = nil
		m.input.SetValue("")
		m.input.Prompt = theme.Current.Prompt.Render(prompt)
		return m, m.runBackslash(trimmed)
	}

	if !strings.HasSuffix(trimmed, ";") {
		m.pending = append(m.pending, line)
		m.input.SetValue("")
		m.input.Prompt = theme.Current.Continuation.Render(continuationPrompt)
		return m, nil
	}

	m.pending = nil
	m.input.SetValue("")
	m.input.Prompt = theme.Current.Prompt.Render(prompt)
	m.running = true

	query := trimStatement(full)
	echo := theme.Current.Prompt.Render(prompt) + m.hl.Highlight(full)
	return m, tea.Batch(tea.Println(echo), m.execCmd(query))
}

// trimStatement strips surrounding whitespace and the terminating
// semicolons from a submitted statement.
func trimStatement(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ";")
}

func (m Model) execCmd(query string) tea.Cmd {
	conn := m.conn
	return func() tea.Msg {
		res, err := conn.Execute(context.Background(), query)
		return execDoneMsg{query: query, res: res, err: err}
	}
}

func (m Model) handleExecDone(msg execDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false

	if m.hist != nil {
		entry := history.Entry{
			Query:      msg.query,
			Adapter:    m.conn.AdapterName(),
			Database:   m.conn.DatabaseName(),
			ExecutedAt: time.Now(),
			IsError:    msg.err != nil,
		}
		if msg.res != nil {
			entry.DurationMS = msg.res.Duration.Milliseconds()
			entry.RowCount = msg.res.RowCount
		}
		// History failures never interrupt the session.
		_ = m.hist.Add(entry)
	}

	if msg.err != nil {
		if adapter.IsQueryError(msg.err) {
			return m, tea.Println(theme.Current.ErrorText.Render(msg.err.Error()))
		}
		// Infrastructure fault: surface it and stop.
		m.fatal = msg.err
		m.quitting = true
		return m, tea.Sequence(
			tea.Println(theme.Current.ErrorText.Render(msg.err.Error())),
			tea.Quit,
		)
	}

	out := render.ResultString(msg.res, m.format)
	if msg.res.Duration > 0 {
		out += "\n" + theme.Current.MutedText.Render(msg.res.Duration.Round(time.Millisecond).String())
	}
	return m, tea.Println(out)
}

// runBackslash executes a backslash command line.
func (m Model) runBackslash(line string) tea.Cmd {
	fields := strings.Fields(line)
	switch fields[0] {
	case `\q`, `\quit`:
		return tea.Quit

	case `\history`:
		term := ""
		if len(fields) > 1 {
			term = strings.Join(fields[1:], " ")
		}
		return tea.Println(m.historyListing(term))

	default:
		return tea.Println(theme.Current.ErrorText.Render(
			fmt.Sprintf("unknown command: %s", fields[0])))
	}
}

// historyListing renders recent (or fuzzy-matched) history, oldest first.
func (m Model) historyListing(term string) string {
	if m.hist == nil {
		return theme.Current.MutedText.Render("history unavailable")
	}
	entries, err := m.hist.Search(term, 100)
	if err != nil {
		return theme.Current.ErrorText.Render(err.Error())
	}
	if len(entries) == 0 {
		return theme.Current.MutedText.Render("no matching history")
	}

	var b strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		b.WriteString(theme.Current.MutedText.Render(e.ExecutedAt.Format("2006-01-02 15:04:05")))
		b.WriteString("  ")
		b.WriteString(m.hl.Highlight(strings.ReplaceAll(e.Query, "\n", " ")))
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.drop.visible {
		b.WriteString("\n")
		b.WriteString(m.drop.view())
	}
	b.WriteString("\n")
	return b.String()
}

// applyCandidate inserts a completion into value at the cursor, replacing
// the -c.Offset characters of the word already typed. Positions are in
// characters, matching textinput's cursor accounting.
func applyCandidate(value string, pos int, c completion.Candidate) (string, int) {
	runes := []rune(value)
	if pos > len(runes) {
		pos = len(runes)
	}
	start := pos + c.Offset
	if start < 0 {
		start = 0
	}

	out := make([]rune, 0, len(runes)+len(c.Label))
	out = append(out, runes[:start]...)
	out = append(out, []rune(c.Label)...)
	out = append(out, runes[pos:]...)
	return string(out), start + utf8.RuneCountInString(c.Label)
}
