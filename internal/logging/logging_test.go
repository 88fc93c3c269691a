package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.WarnLevel, false},
		{"debug", log.DebugLevel, false},
		{" INFO ", log.InfoLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.WarnLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err: got %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	for _, in := range []string{"", "text", "json", "logfmt"} {
		if _, err := ParseFormatter(in); err != nil {
			t.Errorf("ParseFormatter(%q): %v", in, err)
		}
	}
	if _, err := ParseFormatter("xml"); err == nil {
		t.Error("ParseFormatter(xml): expected error")
	}
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "logfmt"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("dispatch", "event", "add_requested")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "event=add_requested") {
		t.Errorf("missing field: %q", out)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, Options{Level: "nope"}); err == nil {
		t.Error("bad level: expected error")
	}
	if _, err := New(&buf, Options{Format: "nope"}); err == nil {
		t.Error("bad format: expected error")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todoboard.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	logger, _ := New(f, DefaultOptions())
	logger.Warn("written")
}
