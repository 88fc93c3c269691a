package todos

// Action is a request to change the todo list.
// Only the types in this file are understood by Reduce.
type Action interface {
	Kind() string
}

// AddTodo appends Task to the end of the list.
type AddTodo struct {
	Task string
}

// CompleteTask removes the item at array offset Index.
type CompleteTask struct {
	Index int
}

// RemoveByID removes the first item carrying ID.
type RemoveByID struct {
	ID int
}

func (AddTodo) Kind() string      { return "add_todo" }
func (CompleteTask) Kind() string { return "complete_task" }
func (RemoveByID) Kind() string   { return "remove_by_id" }
