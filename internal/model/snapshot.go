package model

// TodoSnapshot is what the todo pane renders from.
type TodoSnapshot struct {
	Todos     []TodoItem `json:"todos"`
	InputText string     `json:"inputText"`
}

// CounterSnapshot is what the counter pane renders from.
type CounterSnapshot struct {
	Count int `json:"count"`
}

// ProfileSnapshot is what the completion line renders from.
type ProfileSnapshot struct {
	Username           string `json:"username"`
	CompletedTaskCount int    `json:"completedTaskCount"`
}

// Snapshot bundles every pane's state at one point in time.
type Snapshot struct {
	Todo    TodoSnapshot    `json:"todo"`
	Counter CounterSnapshot `json:"counter"`
	Profile ProfileSnapshot `json:"profile"`
}

// CloneItems returns a copy that shares no backing array with items.
func CloneItems(items []TodoItem) []TodoItem {
	out := make([]TodoItem, len(items))
	copy(out, items)
	return out
}
