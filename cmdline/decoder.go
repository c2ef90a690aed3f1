package cmdline

import (
	"strconv"
	"strings"

	"github.com/kir-gadjello/shellcore/cmdline/vt100"
)

// decoderMode is the input decoder's state. CSI and CSIParam are
// merged here: a fresh CSI entry and one that has already seen a
// parameter digit are handled identically by csiByte.
type decoderMode int

const (
	modeGround decoderMode = iota
	modeEsc
	modeCSI
)

const maxCSIParams = 4

// InputState is the decoder's state: its mode and up to 4 accumulated
// CSI parameters.
type InputState struct {
	mode       decoderMode
	params     [maxCSIParams]int
	paramCount int
	afterCR    bool // swallow a \n immediately following a committed \r
}

func (s *InputState) resetParams() {
	s.params = [maxCSIParams]int{}
	s.paramCount = 0
}

// CharInput feeds one input byte through the decoder. If passthrough
// mode is enabled, the byte bypasses the decoder entirely and goes
// straight to the passthrough callback.
func (i *Interpreter) CharInput(b byte) {
	if !i.active {
		return
	}
	if i.passthroughOn {
		if i.passthrough != nil {
			i.passthrough(b)
		}
		return
	}

	switch i.input.mode {
	case modeGround:
		i.groundByte(b)
	case modeEsc:
		i.escByte(b)
	case modeCSI:
		i.csiByte(b)
	}
}

func (i *Interpreter) groundByte(b byte) {
	if i.input.afterCR {
		i.input.afterCR = false
		if b == vt100.LF {
			return
		}
	}

	switch {
	case b == vt100.CR || b == vt100.LF:
		if b == vt100.CR {
			i.input.afterCR = true
		}
		i.commitLine()
	case b == vt100.DEL:
		i.completion = completionState{}
		i.line.Backspace()
		i.afterEdit()
	case b == vt100.Tab:
		i.tabComplete(true)
	case b == vt100.ETX:
		i.cancelEdit()
	case b == vt100.EOT, b == vt100.CtrlW:
		i.completion = completionState{}
		i.line.DeleteWordLeft()
		i.afterEdit()
	case b == vt100.Esc:
		i.input.mode = modeEsc
		i.input.resetParams()
	case b >= 0x20 && b < vt100.DEL:
		i.completion = completionState{}
		i.line.Insert(b)
		i.afterEdit()
	default:
		if i.ctrlFunc != nil {
			i.ctrlFunc(b)
		}
	}
}

func (i *Interpreter) escByte(b byte) {
	if b == vt100.CSIIntroducer || b == vt100.CSIIntroducerAltO {
		i.input.mode = modeCSI
		i.input.resetParams()
		return
	}
	i.input.mode = modeGround
}

func (i *Interpreter) csiByte(b byte) {
	switch {
	case b >= '0' && b <= '9':
		i.input.params[i.input.paramCount] = i.input.params[i.input.paramCount]*10 + int(b-'0')
	case b == ';':
		if i.input.paramCount < maxCSIParams-1 {
			i.input.paramCount++
		}
	default:
		i.dispatchCSI(b)
		i.input.mode = modeGround
	}
}

// dispatchCSI handles one final CSI byte. Unknown finals are silently
// dropped.
func (i *Interpreter) dispatchCSI(final byte) {
	p0 := i.input.params[0]

	switch final {
	case 'A':
		i.historyBack()
	case 'B':
		i.historyForward()
	case 'C':
		i.completion = completionState{}
		i.line.MoveRight()
		i.afterEdit()
	case 'D':
		i.completion = completionState{}
		i.line.MoveLeft()
		i.afterEdit()
	case 'b':
		i.completion = completionState{}
		i.line.WordLeft()
		i.afterEdit()
	case 'f':
		i.completion = completionState{}
		i.line.WordRight()
		i.afterEdit()
	case 'Z':
		i.tabComplete(false)
	case '~':
		i.completion = completionState{}
		switch p0 {
		case 1:
			i.line.Home()
			i.afterEdit()
		case 2:
			i.line.ToggleOverwrite()
		case 3:
			i.line.DeleteUnderCursor()
			i.afterEdit()
		case 5:
			if text, ok := i.history.First(); ok {
				i.line.SetText(text)
			}
			i.afterEdit()
		case 6:
			if text, ok := i.history.Last(); ok {
				i.line.SetText(text)
			}
			i.afterEdit()
		}
	case 'R':
		rows, cols := i.input.params[0], i.input.params[1]
		i.variables.Set("LINES", strconv.Itoa(rows))
		i.variables.Set("COLUMNS", strconv.Itoa(cols))
	}
}

func (i *Interpreter) historyBack() {
	i.completion = completionState{}
	if text, ok := i.history.Previous(i.line.String()); ok {
		i.line.SetText(text)
	}
	i.afterEdit()
}

func (i *Interpreter) historyForward() {
	i.completion = completionState{}
	if text, ok := i.history.Next(); ok {
		i.line.SetText(text)
	}
	i.afterEdit()
}

// cancelEdit implements Ctrl-C: clear the editable line, emit a
// newline, and reset the history cursor to the scratch slot. The
// execution queue is untouched — cancellation is cooperative, not
// abortive.
func (i *Interpreter) cancelEdit() {
	i.completion = completionState{}
	i.line.Reset()
	i.history.ResetCursor()
	i.withOutputLock(func() {
		if i.output != nil {
			i.output("\r\n")
		}
		i.redraw()
	})
}

// commitLine implements \r / \n handling: pop the line out of the
// buffer, echo it appropriately, and run it through the execution
// pipeline (Exe, which also pushes it to history).
func (i *Interpreter) commitLine() {
	i.completion = completionState{}
	text := i.line.String()
	i.line.Reset()
	i.history.ResetCursor()

	i.withOutputLock(func() {
		if i.output == nil {
			return
		}
		if i.line.Echo() {
			i.output("\r\n")
		} else {
			i.output("%s\r\n", text)
		}
		i.redraw()
	})

	i.Exe(text)
}

func (i *Interpreter) afterEdit() {
	if i.output == nil {
		return
	}
	i.withOutputLock(func() {
		i.redraw()
	})
}

// completionState tracks an in-progress tab-completion cycle: repeated
// Tab/shift-Tab rotates through candidates; the word being completed
// is fixed for the duration of the cycle even though the visible line
// keeps changing.
type completionState struct {
	active     bool
	prefix     string // line text before the word being completed
	word       string // the word as the user originally typed it
	suffix     string // line text after the word (from the original cursor position)
	candidates []string
	index      int // -1 before the first Tab is applied
	dollar     bool
}

func wordStartBefore(text string, cursor int) int {
	i := cursor
	for i > 0 && !isSpace(text[i-1]) {
		i--
	}
	return i
}

// tabComplete handles Tab (forward=true) and shift-Tab / CSI Z
// (forward=false).
func (i *Interpreter) tabComplete(forward bool) {
	if !i.completion.active {
		if !i.startCompletion() {
			return
		}
	}
	i.advanceCompletion(forward)
}

func (i *Interpreter) startCompletion() bool {
	text := i.line.String()
	cursor := i.line.Cursor()
	wordStart := wordStartBefore(text, cursor)
	word := text[wordStart:cursor]

	dollar := strings.HasPrefix(word, "$")
	isFirstWord := strings.TrimSpace(text[:wordStart]) == ""

	startsWithLetter := word != "" && ((word[0] >= 'a' && word[0] <= 'z') || (word[0] >= 'A' && word[0] <= 'Z'))

	var candidates []string
	switch {
	case dollar:
		candidates = matchPrefix(i.variables.Names(), word[1:])
	case isFirstWord && startsWithLetter:
		candidates = mergeUnique(
			matchPrefix(i.commands.Names(), word),
			matchPrefix(i.aliases.Names(), word),
		)
	case isFirstWord:
		candidates = matchPrefix(i.commands.Names(), word)
	default:
		return false
	}
	if len(candidates) == 0 {
		return false
	}

	i.completion = completionState{
		active:     true,
		prefix:     text[:wordStart],
		word:       word,
		suffix:     text[cursor:],
		candidates: candidates,
		index:      -1,
		dollar:     dollar,
	}
	return true
}

func (i *Interpreter) advanceCompletion(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	i.completion.index += step

	if i.completion.index < 0 || i.completion.index >= len(i.completion.candidates) {
		restored := i.completion.prefix + i.completion.word + i.completion.suffix
		i.line.SetText(restored)
		i.line.SetCursor(len(i.completion.prefix) + len(i.completion.word))
		i.completion = completionState{}
		i.afterEdit()
		return
	}

	cand := i.completion.candidates[i.completion.index]
	inserted := cand
	if i.completion.dollar {
		inserted = "$" + cand
	}
	newText := i.completion.prefix + inserted + " " + i.completion.suffix
	i.line.SetText(newText)
	i.line.SetCursor(len(i.completion.prefix) + len(inserted) + 1)
	i.afterEdit()
}

// mergeUnique concatenates lists, keeping first-seen order instead of
// sorting, so completion cycles in registration order.
func mergeUnique(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
