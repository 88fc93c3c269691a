// Package tui is the Bubble Tea view of an app.App.
//
// The model never keeps its own copy of todo, counter or profile state: every
// key that means something is turned into an app event, and the view is
// rebuilt from the app's snapshots afterwards.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoboard/internal/app"
	"github.com/idilsaglam/todoboard/internal/store/profile"
)

type pane int

const (
	paneInput pane = iota
	paneList
	paneUsername
	paneCount
)

func (p pane) String() string {
	switch p {
	case paneInput:
		return "new todo"
	case paneList:
		return "list"
	case paneUsername:
		return "username"
	}
	return "?"
}

type keyMap struct {
	Add       key.Binding
	Complete  key.Binding
	Increment key.Binding
	Decrement key.Binding
	NextPane  key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Complete:  key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "complete")),
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "count up")),
		Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "count down")),
		NextPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model implements tea.Model on top of an app.App.
type Model struct {
	app  *app.App
	keys keyMap

	list     list.Model
	input    textinput.Model
	username textinput.Model
	focus    pane

	lastErr error
	width   int
	height  int
}

// New builds the view for a. It shares a; do not dispatch to a elsewhere
// while the program runs.
func New(a *app.App) Model {
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	// list positions are what ItemCheckToggled carries, so no filtering
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("todo", "todos")

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "New todo..."
	// no limit: the buffer stores whatever is typed
	in.CharLimit = 0

	user := textinput.New()
	user.Prompt = "username: "
	user.CharLimit = 0

	m := Model{app: a, keys: keys, list: l, input: in, username: user, focus: paneInput}
	m.username.SetValue(a.Profile().Username)
	m.input.SetValue(a.Todos().InputText)
	m.input.Focus()
	m.resize(80, 24)
	m.sync()
	return m
}

// Run starts the program on the alternate screen.
func Run(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(a), opts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPane):
			m.setFocus((m.focus + 1) % paneCount)
			return m, nil
		}

		switch m.focus {
		case paneInput:
			return m.updateInput(msg)
		case paneUsername:
			return m.updateUsername(msg)
		case paneList:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case paneInput:
		m.input, cmd = m.input.Update(msg)
	case paneUsername:
		m.username, cmd = m.username.Update(msg)
	case paneList:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Add) {
		m.dispatch(app.AddRequested{})
		m.input.SetValue(m.app.Todos().InputText)
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.dispatch(app.TextChanged{Value: v})
	}
	return m, cmd
}

func (m Model) updateUsername(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.username.Value()
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	if v := m.username.Value(); v != before {
		m.dispatch(app.UsernameChanged{Value: v})
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Complete):
		if len(m.list.Items()) > 0 {
			m.dispatch(app.ItemCheckToggled{Index: m.list.Index()})
		}
		return m, nil
	case key.Matches(msg, m.keys.Increment):
		m.dispatch(app.IncrementRequested{})
		return m, nil
	case key.Matches(msg, m.keys.Decrement):
		m.dispatch(app.DecrementRequested{})
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// dispatch forwards ev and re-renders the list from the new state.
func (m *Model) dispatch(ev app.Event) {
	m.lastErr = m.app.Dispatch(ev)
	m.sync()
}

func (m *Model) sync() {
	items := toListItems(m.app.Todos().Todos)
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	m.input.Blur()
	m.username.Blur()
	switch p {
	case paneInput:
		m.input.Focus()
	case paneUsername:
		m.username.Focus()
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	// username + input boxes, counter, completion, status, help
	listHeight := h - 14
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
	m.input.Width = w - 8
	m.username.Width = w - 18
}

func (m Model) View() string {
	sections := []string{
		frame(m.focus == paneUsername).Render(m.username.View()),
		frame(m.focus == paneList).Render(m.list.View()),
		frame(m.focus == paneInput).Render(m.input.View()),
		counterView(m.app.Counter().Count),
		completionView(m.app.Context()),
		m.statusView(),
		m.helpView(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func counterView(n int) string {
	return fmt.Sprintf("%s %d   %s",
		accentStyle.Render("Count:"), n,
		helpStyle.Render("(+/- in list pane)"))
}

// completionView reads only the shared context, never the app.
func completionView(ctx profile.Context) string {
	return fmt.Sprintf("%s has completed %s tasks",
		titleStyle.Render(ctx.Username),
		successStyle.Render(fmt.Sprint(ctx.CompletedTaskCount)))
}

func (m Model) statusView() string {
	if m.lastErr != nil {
		return errorStyle.Render("✖ " + m.lastErr.Error())
	}
	return mutedStyle.Render("focus: " + m.focus.String())
}

func (m Model) helpView() string {
	bindings := []key.Binding{m.keys.NextPane, m.keys.Quit}
	switch m.focus {
	case paneInput:
		bindings = append([]key.Binding{m.keys.Add}, bindings...)
	case paneList:
		bindings = append([]key.Binding{m.keys.Complete, m.keys.Increment, m.keys.Decrement}, bindings...)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
