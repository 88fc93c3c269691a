// Package todos is the todo-list reducer.
package todos

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/store"
)

const storeName = "todos"

// IDScheme selects how new items get their id.
type IDScheme string

const (
	// SchemeSequence hands out 1, 2, 3, ... and never reuses a value.
	SchemeSequence IDScheme = "sequence"
	// SchemeLength uses len(items)+1. Ids collide once items are removed.
	SchemeLength IDScheme = "length"
)

// ParseIDScheme accepts the config spelling of a scheme. Empty means sequence.
func ParseIDScheme(s string) (IDScheme, error) {
	switch IDScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeSequence:
		return SchemeSequence, nil
	case SchemeLength:
		return SchemeLength, nil
	}
	return "", fmt.Errorf("%w: unknown id scheme %q", store.ErrInvalidConfig, s)
}

// Config is the initial-state description for a todo list.
type Config struct {
	IDScheme IDScheme
}

// State is one immutable value of the list. Reduce never writes into it.
type State struct {
	Items  []model.TodoItem
	NextID int
	Scheme IDScheme
}

// New returns the empty list for cfg.
func New(cfg Config) (State, error) {
	scheme, err := ParseIDScheme(string(cfg.IDScheme))
	if err != nil {
		return State{}, err
	}
	return State{Items: []model.TodoItem{}, NextID: 1, Scheme: scheme}, nil
}

// Len is the number of items on the list.
func (s State) Len() int { return len(s.Items) }

// Reduce applies a to s and returns the next state.
// Unknown actions return s unchanged together with an error.
func Reduce(s State, a Action) (State, error) {
	switch act := a.(type) {
	case AddTodo:
		return add(s, act.Task), nil
	case *AddTodo:
		return add(s, act.Task), nil
	case CompleteTask:
		return removeAt(s, act.Index), nil
	case *CompleteTask:
		return removeAt(s, act.Index), nil
	case RemoveByID:
		return removeByID(s, act.ID), nil
	case *RemoveByID:
		return removeByID(s, act.ID), nil
	default:
		return s, store.Unrecognized(storeName, a)
	}
}

func add(s State, task string) State {
	id := s.NextID
	if s.Scheme == SchemeLength {
		id = len(s.Items) + 1
	}
	items := make([]model.TodoItem, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	items = append(items, model.TodoItem{ID: id, Task: task})

	next := s.NextID
	if id >= next {
		next = id + 1
	}
	return State{Items: items, NextID: next, Scheme: s.Scheme}
}

// removeAt treats anything outside [0, len) as a no-op.
func removeAt(s State, i int) State {
	if i < 0 || i >= len(s.Items) {
		return s
	}
	items := make([]model.TodoItem, 0, len(s.Items)-1)
	items = append(items, s.Items[:i]...)
	items = append(items, s.Items[i+1:]...)
	return State{Items: items, NextID: s.NextID, Scheme: s.Scheme}
}

func removeByID(s State, id int) State {
	for i, it := range s.Items {
		if it.ID == id {
			return removeAt(s, i)
		}
	}
	return s
}
