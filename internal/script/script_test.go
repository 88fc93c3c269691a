package script

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/todoboard/internal/app"
)

func TestLoadAndApply(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "groceries.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Events) != 13 {
		t.Fatalf("events: got %d, want 13", len(s.Events))
	}

	a, err := app.New(app.Options{})
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.Apply(a)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 13 {
		t.Errorf("applied: got %d, want 13", n)
	}

	snap := a.Snapshot()
	var got []string
	for _, it := range snap.Todo.Todos {
		got = append(got, it.Task)
	}
	if want := []string{"milk", "bread"}; !reflect.DeepEqual(got, want) {
		t.Errorf("todos: got %v, want %v", got, want)
	}
	if snap.Todo.InputText != "jam" {
		t.Errorf("input: got %q, want jam", snap.Todo.InputText)
	}
	if snap.Counter.Count != 1 {
		t.Errorf("count: got %d, want 1", snap.Counter.Count)
	}
	if snap.Profile.Username != "ada" || snap.Profile.CompletedTaskCount != 1 {
		t.Errorf("profile: got %+v", snap.Profile)
	}
}

func TestParseDecodesEveryEvent(t *testing.T) {
	s, err := Parse([]byte(`{"events":[
		{"type":"text_changed","value":"a"},
		{"type":"add_requested"},
		{"type":"item_check_toggled","index":-2},
		{"type":"remove_requested","id":4},
		{"type":"increment_requested"},
		{"type":"decrement_requested"},
		{"type":"username_changed","value":""},
		{"type":"complete_task_requested"}
	]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []app.Event{
		app.TextChanged{Value: "a"},
		app.AddRequested{},
		app.ItemCheckToggled{Index: -2},
		app.RemoveRequested{ID: 4},
		app.IncrementRequested{},
		app.DecrementRequested{},
		app.UsernameChanged{Value: ""},
		app.CompleteTaskRequested{},
	}
	if !reflect.DeepEqual(s.Events, want) {
		t.Errorf("events: got %#v, want %#v", s.Events, want)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantPath string
	}{
		{"unknown type", `{"events":[{"type":"increment"}]}`, "/events/0/type"},
		{"missing value", `{"events":[{"type":"text_changed"}]}`, "/events/0"},
		{"missing index", `{"events":[{"type":"item_check_toggled"}]}`, "/events/0"},
		{"fractional index", `{"events":[{"type":"item_check_toggled","index":1.5}]}`, "/events/0/index"},
		{"missing id", `{"events":[{"type":"remove_requested"}]}`, "/events/0"},
		{"extra field", `{"events":[{"type":"add_requested","payload":1}]}`, "/events/0"},
		{"no events", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, ErrInvalidScript) {
				t.Fatalf("Parse: got %v, want ErrInvalidScript", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || len(ve.Violations) == 0 {
				t.Fatalf("Parse: got %#v, want violations", err)
			}
			found := false
			for _, v := range ve.Violations {
				if strings.HasPrefix(v.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no violation under %q: %v", tt.wantPath, ve.Violations)
			}
		})
	}
}

func TestParseIntegralNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want app.Event
	}{
		{"index 1.0", `{"type":"item_check_toggled","index":1.0}`, app.ItemCheckToggled{Index: 1}},
		{"index -0.0", `{"type":"item_check_toggled","index":-0.0}`, app.ItemCheckToggled{Index: 0}},
		{"id exponent", `{"type":"remove_requested","id":2e1}`, app.RemoveRequested{ID: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(`{"events":[` + tt.in + `]}`))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(s.Events) != 1 || !reflect.DeepEqual(s.Events[0], tt.want) {
				t.Errorf("events: got %#v, want %#v", s.Events, tt.want)
			}
		})
	}
}

func TestParseIndexOutOfIntRange(t *testing.T) {
	_, err := Parse([]byte(`{"events":[{"type":"item_check_toggled","index":1e300}]}`))
	if !errors.Is(err, ErrInvalidScript) {
		t.Errorf("Parse: got %v, want ErrInvalidScript", err)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"events":`)); err == nil || errors.Is(err, ErrInvalidScript) {
		t.Errorf("Parse: got %v, want a decode error", err)
	}
}

func TestApplyStopsAtFailure(t *testing.T) {
	a, err := app.New(app.Options{})
	if err != nil {
		t.Fatal(err)
	}
	s := &Script{Events: []app.Event{app.IncrementRequested{}, stray{}, app.IncrementRequested{}}}
	n, err := s.Apply(a)
	if !errors.Is(err, app.ErrUnknownEvent) {
		t.Fatalf("Apply: got %v, want ErrUnknownEvent", err)
	}
	if n != 1 {
		t.Errorf("applied: got %d, want 1", n)
	}
	if a.Counter().Count != 1 {
		t.Errorf("count: got %d, want 1", a.Counter().Count)
	}
}

type stray struct{}

func (stray) Name() string { return "stray" }
