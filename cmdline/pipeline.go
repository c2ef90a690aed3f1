package cmdline

import (
	"strconv"
	"strings"
)

// Operator is how one segment was joined to the next on a committed
// line.
type Operator int

const (
	OpNone      Operator = iota
	OpSemicolon          // ;  unconditional sequence
	OpAnd                // && run next iff previous exit code is 0
	OpOr                 // || run next iff previous exit code is non-zero
	OpBackground         // &  trailing marker, behaves like OpSemicolon
)

// Segment is one command's worth of text plus the operator that joins
// it to the next segment.
type Segment struct {
	Text string
	Op   Operator
}

// splitSegments splits a committed line into Segments at operator
// occurrences found outside single/double quotes. Inside a quoted span
// a backslash skips the byte after it, so an escaped quote does not end
// the span; escapes are otherwise left in the text for Tokenize.
func splitSegments(line string) []Segment {
	var segments []Segment
	i, n := 0, len(line)
	start := 0
	var inQuote byte

	for i < n {
		c := line[i]
		if inQuote != 0 {
			if c == '\\' && i+1 < n {
				i += 2
				continue
			}
			if c == inQuote {
				inQuote = 0
			}
			i++
			continue
		}

		switch {
		case c == '"' || c == '\'':
			inQuote = c
			i++
		case c == ';':
			segments = append(segments, Segment{Text: line[start:i], Op: OpSemicolon})
			i++
			start = i
		case c == '&' && i+1 < n && line[i+1] == '&':
			segments = append(segments, Segment{Text: line[start:i], Op: OpAnd})
			i += 2
			start = i
		case c == '&':
			segments = append(segments, Segment{Text: line[start:i], Op: OpBackground})
			i++
			start = i
		case c == '|' && i+1 < n && line[i+1] == '|':
			segments = append(segments, Segment{Text: line[start:i], Op: OpOr})
			i += 2
			start = i
		default:
			i++
		}
	}

	segments = append(segments, Segment{Text: line[start:], Op: OpNone})
	return segments
}

// Exe runs line as if it had been typed and committed. It sets `_` to
// the raw text, records the line in history, and enqueues the parsed
// segments behind whatever is already pending. A line that is exactly
// the `_` repeat command leaves `_` untouched, so the repeated target is the previously
// executed line rather than `_` itself: overwriting it here would
// make builtinRepeat re-dispatch `_` against itself forever.
func (i *Interpreter) Exe(line string) {
	if !i.active {
		return
	}
	if strings.TrimSpace(line) != "_" {
		i.variables.Set("_", line)
	}
	i.history.Push(normalizeForHistory(line))
	segments := splitSegments(line)
	i.queue = append(i.queue, segments...)
	i.pumpQueue()
}

// normalizeForHistory reconstructs a single unconditional segment's
// text from its tokens, collapsing run-together whitespace the same
// way the line would look if retyped cleanly. Lines containing
// operators are stored verbatim: reconstructing those without
// reintroducing ambiguous spacing around `&&`/`||` isn't worth it.
func normalizeForHistory(raw string) string {
	segs := splitSegments(raw)
	if len(segs) != 1 || segs[0].Op != OpNone {
		return raw
	}
	argv := Tokenize(segs[0].Text, 0)
	if len(argv) == 0 {
		return strings.TrimSpace(raw)
	}
	return strings.Join(argv, " ")
}

// pumpQueue drives the execution queue forward until it empties, a
// segment pauses on RetcodeExecutingContinue, or one returns
// RetcodeBusy.
func (i *Interpreter) pumpQueue() {
	for {
		if i.waiting {
			return
		}
		if len(i.queue) == 0 {
			if i.readyCB != nil {
				i.readyCB(i.lastExit)
			}
			return
		}

		seg := i.queue[0]
		if i.skipForOperator(seg) {
			i.queue = i.queue[1:]
			i.pendingOp = seg.Op
			continue
		}

		substituted := substitute(seg.Text, i.aliases, i.variables)
		argv := Tokenize(substituted, i.maxArgs)
		if len(argv) == 0 {
			i.queue = i.queue[1:]
			i.pendingOp = seg.Op
			continue
		}

		i.inFlightArgv = argv

		cmd, ok := i.commands.Get(argv[0])
		var code Retcode
		switch {
		case !ok:
			i.Printf("Command '%s' not found.\r\n", argv[0])
			code = RetcodeCommandNotFound
		case HasOption(argv, "--help"):
			// `<cmd> --help` is equivalent to `help <cmd>`: completeHead
			// already prints the manual for any code <=
			// RetcodeInvalidParameters, so skip the handler.
			i.inFlightCmd = cmd
			code = RetcodeInvalidParameters
		default:
			i.inFlightCmd = cmd
			code = cmd.Handler(i, argv)
		}

		switch code {
		case RetcodeBusy:
			return
		case RetcodeExecutingContinue:
			i.waiting = true
			return
		default:
			i.completeHead(code)
		}
	}
}

// skipForOperator reports whether seg should be skipped without
// running, based on i.pendingOp (the operator that joined the
// previously-run segment to this one) and the last exit code.
func (i *Interpreter) skipForOperator(seg Segment) bool {
	switch i.pendingOp {
	case OpAnd:
		return i.lastExit != 0
	case OpOr:
		return i.lastExit == 0
	default:
		return false
	}
}

// completeHead finishes the in-flight (head) segment with code: prints
// the manual on a low-severity failure, records the exit code, pops
// the queue, and remembers the operator that will gate the next
// segment.
func (i *Interpreter) completeHead(code Retcode) {
	if code <= RetcodeInvalidParameters && i.inFlightCmd != nil && i.inFlightCmd.Man != "" {
		i.Printf("%s\n", i.inFlightCmd.Man)
	}

	i.lastExit = int(code)
	i.variables.Set("?", strconv.Itoa(int(code)))

	if len(i.queue) > 0 {
		i.pendingOp = i.queue[0].Op
		i.queue = i.queue[1:]
	}
	i.inFlightArgv = nil
	i.inFlightCmd = nil
}

// Ready completes a deferred (RetcodeExecutingContinue) command and
// resumes the queue.
func (i *Interpreter) Ready(code Retcode) {
	if !i.active || !i.waiting {
		return
	}
	i.waiting = false
	i.completeHead(code)
	i.pumpQueue()
}

// Next drives the queue forward with code as the most recent exit
// code, without requiring a segment to be paused. It exists for
// callers that drive further dispatch from within their own
// ready-callback; calling it while a segment is genuinely paused is
// equivalent to Ready.
func (i *Interpreter) Next(code Retcode) {
	if !i.active {
		return
	}
	if i.waiting {
		i.Ready(code)
		return
	}
	i.lastExit = int(code)
	i.variables.Set("?", strconv.Itoa(int(code)))
	i.pumpQueue()
}
