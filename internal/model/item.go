package model

// TodoItem is one entry on the board.
// ID identity depends on the store's id scheme; Task is stored verbatim.
type TodoItem struct {
	ID   int    `json:"id"`
	Task string `json:"task"`
}
