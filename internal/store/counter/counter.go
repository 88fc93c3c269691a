// Package counter is a standalone increment/decrement reducer.
// Its actions are disjoint from the todo list's.
package counter

import "github.com/idilsaglam/todoboard/internal/store"

const storeName = "counter"

type Action interface {
	Kind() string
}

type Increment struct{}

type Decrement struct{}

func (Increment) Kind() string { return "increment" }
func (Decrement) Kind() string { return "decrement" }

// Config is the counter's initial state.
type Config struct {
	Initial int
}

type State struct {
	Count int
}

func New(cfg Config) State { return State{Count: cfg.Initial} }

// Reduce moves the count by one. There are no bounds.
func Reduce(s State, a Action) (State, error) {
	switch a.(type) {
	case Increment, *Increment:
		return State{Count: s.Count + 1}, nil
	case Decrement, *Decrement:
		return State{Count: s.Count - 1}, nil
	}
	return s, store.Unrecognized(storeName, a)
}
