package todos

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/store"
)

type bogus struct{}

func (bogus) Kind() string { return "increment" }

func mustNew(t *testing.T, scheme IDScheme) State {
	t.Helper()
	s, err := New(Config{IDScheme: scheme})
	if err != nil {
		t.Fatalf("New(%q): %v", scheme, err)
	}
	return s
}

func apply(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		if err != nil {
			t.Fatalf("Reduce(%T): %v", a, err)
		}
	}
	return s
}

func ids(items []model.TodoItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestAddAppends(t *testing.T) {
	tests := []struct {
		name string
		task string
	}{
		{"text", "milk"},
		{"empty", ""},
		{"whitespace kept", "  eggs  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := apply(t, mustNew(t, SchemeSequence), AddTodo{Task: "first"})
			got := apply(t, s, AddTodo{Task: tt.task})
			if got.Len() != s.Len()+1 {
				t.Fatalf("len: got %d, want %d", got.Len(), s.Len()+1)
			}
			last := got.Items[got.Len()-1]
			if last.Task != tt.task {
				t.Errorf("task: got %q, want %q", last.Task, tt.task)
			}
			if got.Items[0].Task != "first" {
				t.Errorf("first item moved: got %q", got.Items[0].Task)
			}
		})
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	s := apply(t, mustNew(t, SchemeSequence), AddTodo{Task: "a"}, AddTodo{Task: "a"})
	if s.Len() != 2 {
		t.Fatalf("len: got %d, want 2", s.Len())
	}
}

func TestLengthSchemeIDCollision(t *testing.T) {
	s := apply(t, mustNew(t, SchemeLength),
		AddTodo{Task: "a"}, AddTodo{Task: "b"}, AddTodo{Task: "c"})
	if got, want := ids(s.Items), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids after adds: got %v, want %v", got, want)
	}

	s = apply(t, s, CompleteTask{Index: 0})
	if got, want := ids(s.Items), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids after remove: got %v, want %v", got, want)
	}

	s = apply(t, s, AddTodo{Task: "d"})
	if got, want := ids(s.Items), []int{2, 3, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("ids after re-add: got %v, want %v", got, want)
	}
}

func TestSequenceSchemeNeverReusesIDs(t *testing.T) {
	s := apply(t, mustNew(t, SchemeSequence),
		AddTodo{Task: "a"}, AddTodo{Task: "b"}, AddTodo{Task: "c"},
		CompleteTask{Index: 0}, AddTodo{Task: "d"},
		CompleteTask{Index: 2}, AddTodo{Task: "e"})

	if got, want := ids(s.Items), []int{2, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("ids: got %v, want %v", got, want)
	}
	if s.NextID != 6 {
		t.Errorf("NextID: got %d, want 6", s.NextID)
	}
}

func TestCompleteRemovesByPosition(t *testing.T) {
	s := State{
		Items:  []model.TodoItem{{ID: 1, Task: "a"}, {ID: 2, Task: "b"}, {ID: 3, Task: "c"}},
		NextID: 4,
		Scheme: SchemeSequence,
	}
	got := apply(t, s, CompleteTask{Index: 1})
	want := []model.TodoItem{{ID: 1, Task: "a"}, {ID: 3, Task: "c"}}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("items: got %v, want %v", got.Items, want)
	}

	// position wins even when ids are out of order
	s.Items = []model.TodoItem{{ID: 7, Task: "x"}, {ID: 1, Task: "y"}}
	got = apply(t, s, CompleteTask{Index: 1})
	if want := []model.TodoItem{{ID: 7, Task: "x"}}; !reflect.DeepEqual(got.Items, want) {
		t.Errorf("items: got %v, want %v", got.Items, want)
	}
}

func TestCompleteOutOfRangeIsNoop(t *testing.T) {
	base := apply(t, mustNew(t, SchemeSequence),
		AddTodo{Task: "a"}, AddTodo{Task: "b"}, AddTodo{Task: "c"})

	for _, idx := range []int{99, 3, -1, -3} {
		got := apply(t, base, CompleteTask{Index: idx})
		if !reflect.DeepEqual(got, base) {
			t.Errorf("CompleteTask(%d): got %v, want %v", idx, got.Items, base.Items)
		}
	}
}

func TestRemoveByID(t *testing.T) {
	s := State{
		Items:  []model.TodoItem{{ID: 5, Task: "a"}, {ID: 1, Task: "b"}, {ID: 3, Task: "c"}},
		NextID: 6,
		Scheme: SchemeSequence,
	}
	got := apply(t, s, RemoveByID{ID: 1})
	if want := []int{5, 3}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Errorf("ids: got %v, want %v", ids(got.Items), want)
	}

	got = apply(t, s, RemoveByID{ID: 42})
	if !reflect.DeepEqual(got, s) {
		t.Errorf("missing id changed state: got %v", got.Items)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := apply(t, mustNew(t, SchemeSequence), AddTodo{Task: "a"}, AddTodo{Task: "b"})
	before := model.CloneItems(s.Items)

	_ = apply(t, s, CompleteTask{Index: 0})
	_ = apply(t, s, AddTodo{Task: "c"})

	if !reflect.DeepEqual(s.Items, before) {
		t.Errorf("input mutated: got %v, want %v", s.Items, before)
	}
}

func TestPointerActions(t *testing.T) {
	s := apply(t, mustNew(t, SchemeSequence), &AddTodo{Task: "a"}, &AddTodo{Task: "b"})
	s = apply(t, s, &CompleteTask{Index: 0}, &RemoveByID{ID: 2})
	if s.Len() != 0 {
		t.Errorf("len: got %d, want 0", s.Len())
	}
}

func TestUnknownActionFails(t *testing.T) {
	s := apply(t, mustNew(t, SchemeSequence), AddTodo{Task: "a"})

	got, err := Reduce(s, bogus{})
	if !errors.Is(err, store.ErrUnrecognizedAction) {
		t.Fatalf("err: got %v, want ErrUnrecognizedAction", err)
	}
	var ue *store.UnrecognizedActionError
	if !errors.As(err, &ue) || ue.Store != "todos" {
		t.Errorf("error detail: got %#v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("state changed on error: got %v", got.Items)
	}

	if _, err := Reduce(s, nil); !errors.Is(err, store.ErrUnrecognizedAction) {
		t.Errorf("nil action: got %v, want ErrUnrecognizedAction", err)
	}
}

func TestParseIDScheme(t *testing.T) {
	tests := []struct {
		in      string
		want    IDScheme
		wantErr bool
	}{
		{"", SchemeSequence, false},
		{"sequence", SchemeSequence, false},
		{" Length ", SchemeLength, false},
		{"uuid", "", true},
	}
	for _, tt := range tests {
		got, err := ParseIDScheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseIDScheme(%q) err: got %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, store.ErrInvalidConfig) {
			t.Errorf("ParseIDScheme(%q) err: got %v, want ErrInvalidConfig", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseIDScheme(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRejectsBadScheme(t *testing.T) {
	if _, err := New(Config{IDScheme: "random"}); !errors.Is(err, store.ErrInvalidConfig) {
		t.Errorf("New: got %v, want ErrInvalidConfig", err)
	}
}
