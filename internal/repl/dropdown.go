package repl

import (
	"strings"

	"github.com/sadopc/sqlrepl/internal/completion"
	"github.com/sadopc/sqlrepl/internal/theme"
)

const maxVisible = 5

// dropdown is the completion menu shown under the prompt while typing.
type dropdown struct {
	items    []completion.Candidate
	selected int
	visible  bool
}

// setItems replaces the menu contents. An empty slice hides the menu.
func (d *dropdown) setItems(items []completion.Candidate) {
	d.items = items
	d.selected = 0
	d.visible = len(items) > 0
}

func (d *dropdown) dismiss() {
	d.visible = false
}

// move shifts the selection, clamped to the item range.
func (d *dropdown) move(delta int) {
	d.selected += delta
	if d.selected < 0 {
		d.selected = 0
	}
	if d.selected > len(d.items)-1 {
		d.selected = len(d.items) - 1
	}
}

// current returns the selected candidate.
func (d *dropdown) current() (completion.Candidate, bool) {
	if !d.visible || d.selected >= len(d.items) {
		return completion.Candidate{}, false
	}
	return d.items[d.selected], true
}

// view renders the visible window of the menu.
func (d *dropdown) view() string {
	if !d.visible || len(d.items) == 0 {
		return ""
	}

	th := theme.Current

	// Scroll the window so the selection stays visible.
	offset := 0
	if d.selected >= maxVisible {
		offset = d.selected - maxVisible + 1
	}
	end := offset + maxVisible
	if end > len(d.items) {
		end = len(d.items)
	}

	var lines []string
	for i, item := range d.items[offset:end] {
		if offset+i == d.selected {
			// The selected row uses the plain label so the selection
			// background is not broken up by the match highlighting.
			lines = append(lines, th.AutocompleteSelected.Render(item.Label+"  "+item.Meta))
			continue
		}
		lines = append(lines, th.AutocompleteItem.Render(item.Display)+"  "+th.CompletionMeta.Render(item.Meta))
	}

	return th.AutocompleteBorder.Render(strings.Join(lines, "\n"))
}
