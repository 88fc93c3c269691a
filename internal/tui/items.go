package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoboard/internal/model"
)

// listItem adapts model.TodoItem to bubbles/list.Item
type listItem struct {
	item model.TodoItem
}

func (i listItem) Title() string       { return fmt.Sprintf("%s %s", boxUnchecked, i.item.Task) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Task }

func toListItems(items []model.TodoItem) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{item: it})
	}
	return out
}

// single-line rows: "> ☐ Buy milk  #3"
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	task := it.item.Task
	if task == "" {
		task = mutedStyle.Render("(empty)")
	}
	line := fmt.Sprintf("%s %s  %s", pendingStyle.Render(boxUnchecked), task, mutedStyle.Render(fmt.Sprintf("#%d", it.item.ID)))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
