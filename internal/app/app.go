// Package app composes the todo, input, counter and profile stores and
// turns view events into store actions.
//
// Everything runs on the caller's goroutine. Dispatch returns only after the
// new state is in place and every subscriber has seen it; callers must not
// dispatch from more than one goroutine.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/logging"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/store/counter"
	"github.com/idilsaglam/todoboard/internal/store/input"
	"github.com/idilsaglam/todoboard/internal/store/profile"
	"github.com/idilsaglam/todoboard/internal/store/todos"
)

// ErrUnknownEvent is returned by Dispatch for events it has no route for.
var ErrUnknownEvent = errors.New("unknown event")

// Options holds one initial-state config per store plus ambient wiring.
type Options struct {
	Todos   todos.Config
	Counter counter.Config
	Profile profile.Config

	Logger    *log.Logger
	SessionID string
}

// OptionsFromConfig maps loaded settings onto store configs.
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) Options {
	return Options{
		Todos:   todos.Config{IDScheme: todos.IDScheme(cfg.IDScheme)},
		Counter: counter.Config{Initial: cfg.InitialCount},
		Profile: profile.Config{DefaultUsername: cfg.Username},
		Logger:  logger,
	}
}

// App owns all mutable state.
type App struct {
	todos   todos.State
	input   input.Buffer
	counter counter.State
	profile profile.State

	session   string
	logger    *log.Logger
	listeners []func(model.Snapshot)
}

// New validates every store config and builds the initial state.
func New(opts Options) (*App, error) {
	ts, err := todos.New(opts.Todos)
	if err != nil {
		return nil, fmt.Errorf("todo store: %w", err)
	}
	session := opts.SessionID
	if session == "" {
		session = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		todos:   ts,
		counter: counter.New(opts.Counter),
		profile: profile.New(opts.Profile),
		session: session,
		logger:  logger.With("session", session),
	}, nil
}

// SessionID identifies this App in log lines.
func (a *App) SessionID() string { return a.session }

// Subscribe registers fn to receive a snapshot after every successful dispatch.
func (a *App) Subscribe(fn func(model.Snapshot)) {
	a.listeners = append(a.listeners, fn)
}

// Dispatch routes ev to its store. On error no state changes and no
// subscriber runs.
func (a *App) Dispatch(ev Event) error {
	if ev == nil {
		return a.fail("<nil>", fmt.Errorf("%w: <nil>", ErrUnknownEvent))
	}
	var err error
	switch e := ev.(type) {
	case TextChanged:
		a.input.SetText(e.Value)
	case AddRequested:
		err = a.addFromInput()
	case ItemCheckToggled:
		err = a.applyTodo(todos.CompleteTask{Index: e.Index})
	case RemoveRequested:
		err = a.applyTodo(todos.RemoveByID{ID: e.ID})
	case IncrementRequested:
		err = a.applyCounter(counter.Increment{})
	case DecrementRequested:
		err = a.applyCounter(counter.Decrement{})
	case UsernameChanged:
		err = a.applyProfile(profile.SetUsername{Name: e.Value})
	case CompleteTaskRequested:
		err = a.applyProfile(profile.IncrementCompletedTask{})
	default:
		err = fmt.Errorf("%w: %s (%T)", ErrUnknownEvent, ev.Name(), ev)
	}
	if err != nil {
		return a.fail(ev.Name(), err)
	}
	a.logger.Debug("dispatch", "event", ev.Name(), "todos", a.todos.Len(), "count", a.counter.Count)
	a.notify()
	return nil
}

// addFromInput clears the buffer only once the add has been applied.
func (a *App) addFromInput() error {
	if err := a.applyTodo(todos.AddTodo{Task: a.input.Text()}); err != nil {
		return err
	}
	a.input.Clear()
	return nil
}

func (a *App) applyTodo(act todos.Action) error {
	next, err := todos.Reduce(a.todos, act)
	if err != nil {
		return err
	}
	a.todos = next
	return nil
}

func (a *App) applyCounter(act counter.Action) error {
	next, err := counter.Reduce(a.counter, act)
	if err != nil {
		return err
	}
	a.counter = next
	return nil
}

func (a *App) applyProfile(act profile.Action) error {
	next, err := profile.Reduce(a.profile, act)
	if err != nil {
		return err
	}
	a.profile = next
	return nil
}

func (a *App) fail(name string, err error) error {
	a.logger.Warn("dispatch failed", "event", name, "err", err)
	return err
}

func (a *App) notify() {
	if len(a.listeners) == 0 {
		return
	}
	snap := a.Snapshot()
	for _, fn := range a.listeners {
		fn(snap)
	}
}

// Todos returns the todo pane's state.
func (a *App) Todos() model.TodoSnapshot {
	return model.TodoSnapshot{
		Todos:     model.CloneItems(a.todos.Items),
		InputText: a.input.Text(),
	}
}

func (a *App) Counter() model.CounterSnapshot {
	return model.CounterSnapshot{Count: a.counter.Count}
}

func (a *App) Profile() model.ProfileSnapshot {
	return model.ProfileSnapshot{
		Username:           a.profile.Username,
		CompletedTaskCount: a.profile.CompletedTaskCount,
	}
}

// Snapshot captures every pane at once.
func (a *App) Snapshot() model.Snapshot {
	return model.Snapshot{Todo: a.Todos(), Counter: a.Counter(), Profile: a.Profile()}
}

// Context is the shared read-only profile view handed to nested panes.
// Its values are fixed at call time; call Context again after a dispatch.
func (a *App) Context() profile.Context {
	return profile.Context{
		Username:           a.profile.Username,
		CompletedTaskCount: a.profile.CompletedTaskCount,
		CompleteTask: func() error {
			return a.Dispatch(CompleteTaskRequested{})
		},
	}
}
