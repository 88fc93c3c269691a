package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todoboard/internal/model"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprint(stdout, PanelString(lines))
}

// PanelString is Panel without the write.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := visibleWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		b.WriteString(t.V + " " + pad(ln) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// SnapshotLines lays out every pane of s for Panel.
func SnapshotLines(s model.Snapshot) []string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", C(t.Title, "Todos"), C(t.Accent, "Total"), len(s.Todo.Todos)),
		"",
	}
	if len(s.Todo.Todos) == 0 {
		lines = append(lines, C(t.Muted, "no items"))
	}
	for i, it := range s.Todo.Todos {
		task := it.Task
		if runewidth.StringWidth(task) > 80 {
			task = runewidth.Truncate(task, 80, "...")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			C(t.Muted, fmt.Sprintf("%2d.", i)), C(t.Pending, t.BoxUnchecked), task, C(t.Muted, fmt.Sprintf("#%d", it.ID))))
	}
	lines = append(lines,
		"",
		C(t.Muted, "input: ")+fmt.Sprintf("%q", s.Todo.InputText),
		fmt.Sprintf("Count: %d", s.Counter.Count),
		CompletionLine(s.Profile),
	)
	return lines
}

// CompletionLine is the "<user> has completed <n> tasks" sentence.
func CompletionLine(p model.ProfileSnapshot) string {
	noun := "tasks"
	if p.CompletedTaskCount == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%s has completed %d %s", p.Username, p.CompletedTaskCount, noun)
}
