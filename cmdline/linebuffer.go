package cmdline

import (
	"strings"

	"github.com/kir-gadjello/shellcore/cmdline/vt100"
)

// DefaultLineCapacity is the default maximum length of an editable line.
const DefaultLineCapacity = 2000

// LineBuffer is the in-memory editable command line plus its cursor. It
// owns the escape sequences required to keep a dumb terminal in sync
// with its internal state; it does not perform I/O itself — callers
// render what LineBuffer.Redraw returns.
type LineBuffer struct {
	text      []byte
	cursor    int
	capacity  int
	overwrite bool
	echo      bool
}

// NewLineBuffer returns an empty LineBuffer with the given capacity (0
// means DefaultLineCapacity) and echo enabled.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity <= 0 {
		capacity = DefaultLineCapacity
	}
	return &LineBuffer{capacity: capacity, echo: true}
}

// Len returns the current line length.
func (b *LineBuffer) Len() int { return len(b.text) }

// String returns the current line text.
func (b *LineBuffer) String() string { return string(b.text) }

// Cursor returns the current cursor index, always in [0, Len()].
func (b *LineBuffer) Cursor() int { return b.cursor }

// Echo reports whether edits are echoed back via Redraw.
func (b *LineBuffer) Echo() bool { return b.echo }

// SetEcho toggles echo-on/echo-off mode.
func (b *LineBuffer) SetEcho(on bool) { b.echo = on }

// Overwrite reports whether insert mode is disabled.
func (b *LineBuffer) Overwrite() bool { return b.overwrite }

// ToggleOverwrite flips insert/overwrite mode (CSI 2~).
func (b *LineBuffer) ToggleOverwrite() { b.overwrite = !b.overwrite }

// Reset clears the text and cursor, ready for the next line.
func (b *LineBuffer) Reset() {
	b.text = b.text[:0]
	b.cursor = 0
}

// SetText replaces the buffer contents outright (used by history
// navigation) and puts the cursor at the end.
func (b *LineBuffer) SetText(s string) {
	if len(s) > b.capacity {
		s = s[:b.capacity]
	}
	b.text = []byte(s)
	b.cursor = len(b.text)
}

// SetCursor moves the cursor to idx, clamped to [0, Len()].
func (b *LineBuffer) SetCursor(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(b.text) {
		idx = len(b.text)
	}
	b.cursor = idx
}

// Insert inserts a single byte at the cursor. Overflow is silently
// ignored once the line is at capacity.
func (b *LineBuffer) Insert(c byte) {
	if b.overwrite && b.cursor < len(b.text) {
		b.text[b.cursor] = c
		b.cursor++
		return
	}
	if len(b.text) >= b.capacity {
		return
	}
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = c
	b.cursor++
}

// Backspace deletes the byte immediately left of the cursor.
func (b *LineBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	copy(b.text[b.cursor-1:], b.text[b.cursor:])
	b.text = b.text[:len(b.text)-1]
	b.cursor--
}

// DeleteUnderCursor deletes the byte at the cursor (CSI 3~).
func (b *LineBuffer) DeleteUnderCursor() {
	if b.cursor >= len(b.text) {
		return
	}
	copy(b.text[b.cursor:], b.text[b.cursor+1:])
	b.text = b.text[:len(b.text)-1]
}

// MoveLeft/MoveRight move the cursor one column.
func (b *LineBuffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *LineBuffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// Home/End move the cursor to the start/end of the line.
func (b *LineBuffer) Home() { b.cursor = 0 }
func (b *LineBuffer) End()  { b.cursor = len(b.text) }

// isSpace reports whether c is shell whitespace (space or tab).
func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// WordLeft moves the cursor to the start of the previous run of
// non-whitespace.
func (b *LineBuffer) WordLeft() {
	i := b.cursor
	for i > 0 && isSpace(b.text[i-1]) {
		i--
	}
	for i > 0 && !isSpace(b.text[i-1]) {
		i--
	}
	b.cursor = i
}

// WordRight moves the cursor to the start of the next run of
// non-whitespace, or end-of-line.
func (b *LineBuffer) WordRight() {
	i := b.cursor
	n := len(b.text)
	for i < n && !isSpace(b.text[i]) {
		i++
	}
	for i < n && isSpace(b.text[i]) {
		i++
	}
	b.cursor = i
}

// DeleteWordLeft implements Ctrl-W / Ctrl-D / EOT: delete the word
// immediately left of the cursor, including the run of whitespace
// between it and the cursor.
func (b *LineBuffer) DeleteWordLeft() {
	end := b.cursor
	start := end
	for start > 0 && isSpace(b.text[start-1]) {
		start--
	}
	for start > 0 && !isSpace(b.text[start-1]) {
		start--
	}
	b.text = append(b.text[:start], b.text[end:]...)
	b.cursor = start
}

// Redraw renders the deterministic resync sequence
// `\r\x1B[2K<prompt><text> \x1B[<n>D`, where n leaves the cursor
// inside the text (n=1 when the cursor sits at end-of-line, over the
// trailing space).
func (b *LineBuffer) Redraw(prompt string) string {
	if !b.echo {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('\r')
	sb.WriteString(vt100.EraseLine)
	sb.WriteString(prompt)
	sb.Write(b.text)
	sb.WriteByte(' ')
	n := len(b.text) - b.cursor + 1
	sb.WriteString(vt100.CursorBack(n))
	return sb.String()
}
