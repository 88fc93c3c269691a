package app

// Event is an inbound request from a view. Name is the wire spelling used
// by event scripts and logs.
type Event interface {
	Name() string
}

// TextChanged mirrors a keystroke in the new-todo input.
type TextChanged struct {
	Value string `json:"value"`
}

// AddRequested submits the input buffer as a new todo.
type AddRequested struct{}

// ItemCheckToggled completes the todo at list position Index.
type ItemCheckToggled struct {
	Index int `json:"index"`
}

// RemoveRequested removes the todo carrying ID.
type RemoveRequested struct {
	ID int `json:"id"`
}

type IncrementRequested struct{}

type DecrementRequested struct{}

// UsernameChanged mirrors a keystroke in the username input.
type UsernameChanged struct {
	Value string `json:"value"`
}

// CompleteTaskRequested bumps the profile's completed-task counter.
type CompleteTaskRequested struct{}

func (TextChanged) Name() string           { return "text_changed" }
func (AddRequested) Name() string          { return "add_requested" }
func (ItemCheckToggled) Name() string      { return "item_check_toggled" }
func (RemoveRequested) Name() string       { return "remove_requested" }
func (IncrementRequested) Name() string    { return "increment_requested" }
func (DecrementRequested) Name() string    { return "decrement_requested" }
func (UsernameChanged) Name() string       { return "username_changed" }
func (CompleteTaskRequested) Name() string { return "complete_task_requested" }
