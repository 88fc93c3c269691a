// Package input holds the unsubmitted text for the next todo.
package input

// Buffer mirrors the latest keystroke until it is cleared after an add.
// The zero value is an empty buffer.
type Buffer struct {
	text string
}

// SetText replaces the content. No filtering of any kind.
func (b *Buffer) SetText(v string) { b.text = v }

// Clear resets the content to "".
func (b *Buffer) Clear() { b.text = "" }

func (b *Buffer) Text() string { return b.text }
