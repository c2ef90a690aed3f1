// Package vt100 holds the raw control bytes and escape strings the
// interpreter recognizes on input and emits on output. It has no
// behavior of its own; it exists so decoder.go and linebuffer.go don't
// spell out magic numbers.
package vt100

import "strconv"

// Single-byte controls the Ground state reacts to.
const (
	Bell      = 0x07
	Backspace = 0x08
	Tab       = 0x09
	LF        = 0x0A
	CR        = 0x0D
	ETX       = 0x03 // Ctrl-C
	EOT       = 0x04 // Ctrl-D
	CtrlW     = 0x17 // Ctrl-W
	Esc       = 0x1B
	DEL       = 0x7F
)

// Esc-state bytes that enter a CSI sequence.
const (
	CSIIntroducer     = '['
	CSIIntroducerAltO = 'O'
)

// Outgoing escape sequences, assembled by linebuffer.go and builtins.go.
const (
	EraseLine   = "\x1B[2K"
	ClearScreen = "\x1B[2J\x1B[H"
	ScreenQuery = "\x1B[6n"
)

// CursorBack returns the sequence that moves the cursor left n columns.
func CursorBack(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1B[" + strconv.Itoa(n) + "D"
}

// CursorForward returns the sequence that moves the cursor right n columns.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1B[" + strconv.Itoa(n) + "C"
}
