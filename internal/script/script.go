// Package script reads JSON event scripts and replays them against an App.
//
// A script is validated against an embedded JSON Schema before any event is
// decoded, so a bad script never reaches the stores.
package script

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todoboard/internal/app"
)

//go:embed events.schema.json
var schemaJSON string

const schemaURL = "todoboard://events.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// ErrInvalidScript wraps every schema violation.
var ErrInvalidScript = errors.New("invalid event script")

// Violation is one schema failure at a JSON location.
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError lists the violations found in a script.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidScript, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidScript }

// Script is a decoded, validated event sequence.
type Script struct {
	Description string
	Events      []app.Event
}

type rawScript struct {
	Description string     `json:"description"`
	Events      []rawEvent `json:"events"`
}

// Index and ID stay json.Numbers: the schema's integer type admits 1.0 and 2e1.
type rawEvent struct {
	Type  string      `json:"type"`
	Value string      `json:"value"`
	Index json.Number `json:"index"`
	ID    json.Number `json:"id"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse validates b and decodes its events.
func Parse(b []byte) (*Script, error) {
	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, toValidationError(err)
	}

	var raw rawScript
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	out := &Script{Description: raw.Description, Events: make([]app.Event, 0, len(raw.Events))}
	for i, re := range raw.Events {
		ev, err := re.event()
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %w", ErrInvalidScript, i, err)
		}
		out.Events = append(out.Events, ev)
	}
	return out, nil
}

// Apply dispatches every event in order and stops at the first failure.
// It returns how many events were applied.
func (s *Script) Apply(a *app.App) (int, error) {
	for i, ev := range s.Events {
		if err := a.Dispatch(ev); err != nil {
			return i, fmt.Errorf("event %d (%s): %w", i, ev.Name(), err)
		}
	}
	return len(s.Events), nil
}

func (r rawEvent) event() (app.Event, error) {
	switch r.Type {
	case "text_changed":
		return app.TextChanged{Value: r.Value}, nil
	case "add_requested":
		return app.AddRequested{}, nil
	case "item_check_toggled":
		idx, err := toInt(r.Index)
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		return app.ItemCheckToggled{Index: idx}, nil
	case "remove_requested":
		id, err := toInt(r.ID)
		if err != nil {
			return nil, fmt.Errorf("id: %w", err)
		}
		return app.RemoveRequested{ID: id}, nil
	case "increment_requested":
		return app.IncrementRequested{}, nil
	case "decrement_requested":
		return app.DecrementRequested{}, nil
	case "username_changed":
		return app.UsernameChanged{Value: r.Value}, nil
	case "complete_task_requested":
		return app.CompleteTaskRequested{}, nil
	}
	return nil, fmt.Errorf("%w: %q", app.ErrUnknownEvent, r.Type)
}

// toInt accepts any integral number that fits in an int.
func toInt(n json.Number) (int, error) {
	if i, err := strconv.ParseInt(n.String(), 10, strconv.IntSize); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", n)
	}
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%s is not an int", n)
	}
	return int(f), nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

func toValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	out := &ValidationError{}
	collect(out, ve)
	return out
}

func collect(out *ValidationError, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		out.Violations = append(out.Violations, Violation{Path: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, c := range ve.Causes {
		collect(out, c)
	}
}
