// Package profile tracks the username and the completed-task counter that
// the app shares with its panes through a Context.
package profile

import "github.com/idilsaglam/todoboard/internal/store"

const (
	storeName = "profile"

	// DefaultUsername is shown until someone types a name.
	DefaultUsername = "guest"
)

type Action interface {
	Kind() string
}

// SetUsername replaces the username, empty included.
type SetUsername struct {
	Name string
}

// IncrementCompletedTask bumps the completed-task counter by one.
type IncrementCompletedTask struct{}

func (SetUsername) Kind() string            { return "set_username" }
func (IncrementCompletedTask) Kind() string { return "increment_completed_task" }

type Config struct {
	DefaultUsername string
}

type State struct {
	Username           string
	CompletedTaskCount int
}

func New(cfg Config) State {
	name := cfg.DefaultUsername
	if name == "" {
		name = DefaultUsername
	}
	return State{Username: name}
}

func Reduce(s State, a Action) (State, error) {
	switch act := a.(type) {
	case SetUsername:
		s.Username = act.Name
	case *SetUsername:
		s.Username = act.Name
	case IncrementCompletedTask, *IncrementCompletedTask:
		s.CompletedTaskCount++
	default:
		return s, store.Unrecognized(storeName, a)
	}
	return s, nil
}

// Context is the read-only view handed to nested panes.
// CompleteTask is the single write path; nothing in the default key map calls it.
// It returns the dispatch error, if any.
type Context struct {
	Username           string
	CompletedTaskCount int
	CompleteTask       func() error
}
