package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/sentiment/internal/sentiment"
	"github.com/idilsaglam/sentiment/internal/ui"
)

// exampleItem adapts a sample text to bubbles/list.Item
type exampleItem struct {
	n    int
	text string
}

func (i exampleItem) FilterValue() string { return i.text }

// exampleDelegate renders one example per line, truncated to the list width.
// The cursor only shows while the list has focus.
type exampleDelegate struct {
	active bool
}

func (d exampleDelegate) Height() int                               { return 1 }
func (d exampleDelegate) Spacing() int                              { return 0 }
func (d exampleDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d exampleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(exampleItem)
	if !ok {
		return
	}
	t := ui.Current()

	prefix := "  "
	selected := d.active && index == m.Index()
	if selected {
		prefix = t.SymCursor
	}
	width := m.Width() - runewidth.StringWidth(prefix)
	if width < 10 {
		width = 10
	}
	line := runewidth.Truncate(fmt.Sprintf("%2d. %s", it.n, it.text), width, "…")

	if selected {
		fmt.Fprint(w, t.Selected.Render(prefix+line))
		return
	}
	fmt.Fprint(w, prefix+t.Muted.Render(line))
}

func newExampleList() list.Model {
	samples := sentiment.Examples()
	items := make([]list.Item, 0, len(samples))
	for i, s := range samples {
		items = append(items, exampleItem{n: i + 1, text: s})
	}

	l := list.New(items, exampleDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = ui.Current().Muted
	return l
}
