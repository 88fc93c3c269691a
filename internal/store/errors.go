// Package store holds what the todo, counter and profile reducers share.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedAction is matched by every reducer's unknown-action error.
	ErrUnrecognizedAction = errors.New("unrecognized action")
	// ErrInvalidConfig is returned when a store is constructed from a bad config.
	ErrInvalidConfig = errors.New("invalid store config")
)

// UnrecognizedActionError reports an action a reducer has no case for.
// The state passed to the reducer is returned untouched alongside it.
type UnrecognizedActionError struct {
	Store  string
	Action any
}

func (e *UnrecognizedActionError) Error() string {
	return fmt.Sprintf("%s: unrecognized action %T", e.Store, e.Action)
}

func (e *UnrecognizedActionError) Unwrap() error { return ErrUnrecognizedAction }

// Unrecognized builds the error for store name and action a.
func Unrecognized(name string, a any) error {
	return &UnrecognizedActionError{Store: name, Action: a}
}
