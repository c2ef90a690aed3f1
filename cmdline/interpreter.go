// Package cmdline implements an embeddable, single-threaded interactive
// command-line interpreter: a byte-at-a-time input decoder with VT100/ANSI
// escape recognition, an editable line buffer, a history ring, a
// quoting-aware tokenizer, alias/variable substitution, a command table,
// and an execution pipeline with deferred-completion support. See
// SPEC_FULL.md for the full component breakdown.
package cmdline

// OutputFunc is the caller-provided formatted-print callback every
// render and every command's output goes through.
type OutputFunc func(format string, args ...interface{})

// ReadyFunc is invoked with the last exit code when the execution
// queue drains.
type ReadyFunc func(lastExit int)

// ControlFunc receives control bytes the Ground state doesn't itself
// interpret.
type ControlFunc func(b byte)

// PassthroughFunc receives every raw byte when passthrough mode is
// enabled, bypassing the decoder entirely.
type PassthroughFunc func(b byte)

// MutexFunc brackets calls into the output callback so a caller whose
// print callback may be re-entered from another thread or a signal
// handler can serialize them.
type MutexFunc func()

// DefaultPrompt is the value of PS1 before any `set PS1=...`.
const DefaultPrompt = "/>"

// Interpreter is one interpreter instance. It owns every table, the
// ring, and the buffers exclusively; it is not safe for concurrent use
// from more than one goroutine at a time, by design: all dispatch is
// single-threaded and cooperative.
type Interpreter struct {
	active bool

	output      OutputFunc
	readyCB     ReadyFunc
	ctrlFunc    ControlFunc
	passthrough PassthroughFunc
	mutexWait   MutexFunc
	mutexRel    MutexFunc
	mutexDepth  int

	passthroughOn bool

	line    *LineBuffer
	input   InputState
	history *HistoryRing

	commands  *CommandTable
	aliases   *NameValueTable
	variables *NameValueTable

	maxArgs int

	queue        []Segment
	lastExit     int
	waiting      bool
	pendingOp    Operator
	inFlightArgv []string
	inFlightCmd  *Command

	completion completionState
}

// New creates and initializes an interpreter. output may be nil, in
// which case all rendering is discarded.
func New(output OutputFunc) *Interpreter {
	i := &Interpreter{}
	i.init(output)
	return i
}

func (i *Interpreter) init(output OutputFunc) {
	i.active = true
	i.output = output
	i.line = NewLineBuffer(DefaultLineCapacity)
	i.input = InputState{}
	i.history = NewHistoryRing(DefaultHistoryMax)
	i.commands = newCommandTable()
	i.aliases = newNameValueTable()
	i.variables = newNameValueTable()
	i.maxArgs = DefaultMaxArgs
	i.pendingOp = OpNone
	i.lastExit = 0

	i.variables.Set("PS1", DefaultPrompt)
	i.variables.Set("?", "0")
	i.variables.Set("_", "")
	i.variables.Set("LINES", "24")
	i.variables.Set("COLUMNS", "80")

	registerBuiltins(i)
}

// Free releases all state; subsequent operations on i become no-ops.
func (i *Interpreter) Free() {
	*i = Interpreter{}
}

// Reset drops all non-builtin commands, aliases, and variables, then
// re-seeds the builtins and reserved variables exactly as New does.
func (i *Interpreter) Reset() {
	if !i.active {
		return
	}
	output := i.output
	readyCB := i.readyCB
	ctrlFunc := i.ctrlFunc
	passthrough := i.passthrough
	mutexWait, mutexRel := i.mutexWait, i.mutexRel

	i.init(output)

	i.readyCB = readyCB
	i.ctrlFunc = ctrlFunc
	i.passthrough = passthrough
	i.mutexWait, i.mutexRel = mutexWait, mutexRel
}

// withOutputLock brackets fn with the caller's mutex-wait/release pair
// if configured, using a recursion depth counter so a handler that
// calls Printf while already inside the critical section (e.g. during
// its own dispatch) does not deadlock.
func (i *Interpreter) withOutputLock(fn func()) {
	if i.mutexWait != nil && i.mutexDepth == 0 {
		i.mutexWait()
	}
	i.mutexDepth++
	defer func() {
		i.mutexDepth--
		if i.mutexDepth == 0 && i.mutexRel != nil {
			i.mutexRel()
		}
	}()
	fn()
}

// Printf is the handler-facing print entry point: it writes through
// the output callback and then re-renders the active edit line and
// prompt, so command output never clobbers what the user is typing.
func (i *Interpreter) Printf(format string, args ...interface{}) {
	i.Vprintf(format, args)
}

// Vprintf is Printf taking the args as a slice.
func (i *Interpreter) Vprintf(format string, args []interface{}) {
	if !i.active {
		return
	}
	i.withOutputLock(func() {
		if i.output != nil {
			i.output(format, args...)
		}
		i.redraw()
	})
}

// redraw re-renders the current edit line and prompt.
func (i *Interpreter) redraw() {
	if i.output == nil {
		return
	}
	prompt, _ := i.variables.Get("PS1")
	if seq := i.line.Redraw(prompt); seq != "" {
		i.output("%s", seq)
	}
}

// EchoOn, EchoOff, and EchoState control and report whether typed
// characters are echoed back to the output callback.
func (i *Interpreter) EchoOn() {
	if i.active {
		i.line.SetEcho(true)
	}
}

func (i *Interpreter) EchoOff() {
	if i.active {
		i.line.SetEcho(false)
	}
}

func (i *Interpreter) EchoState() bool {
	if !i.active {
		return false
	}
	return i.line.Echo()
}

// HistorySize reads (n == 0) or resizes (n > 0, clamped to
// MaxHistoryMax) the history ring's maximum entry count.
func (i *Interpreter) HistorySize(n int) int {
	if !i.active {
		return 0
	}
	if n > 0 {
		i.history.SetMax(n)
	}
	return i.history.Max()
}

// RequestScreenSize emits the `ESC[6n` cursor-position/size query; the
// response arrives later through CharInput as a CSI `R` sequence and
// updates LINES/COLUMNS.
func (i *Interpreter) RequestScreenSize() {
	if !i.active || i.output == nil {
		return
	}
	i.withOutputLock(func() {
		i.output("\x1B[6n")
	})
}

// Add registers a command.
func (i *Interpreter) Add(name string, handler Handler, info, man string) bool {
	if !i.active {
		return false
	}
	return i.commands.Add(name, handler, info, man)
}

// Delete deregisters a command.
func (i *Interpreter) Delete(name string) {
	if !i.active {
		return
	}
	i.commands.Delete(name)
}

// AliasAdd creates, updates, or (value == "") deletes an alias.
func (i *Interpreter) AliasAdd(name, value string) {
	if !i.active || name == "" {
		return
	}
	if value == "" {
		i.aliases.Delete(name)
		return
	}
	i.aliases.Set(name, value)
}

// VariableAdd creates, updates, or (value == "") deletes a variable.
func (i *Interpreter) VariableAdd(name, value string) {
	if !i.active || name == "" {
		return
	}
	if value == "" {
		i.variables.Delete(name)
		return
	}
	i.variables.Set(name, value)
}

// SetReadyCB registers the callback fired with the last exit code when
// the execution queue drains.
func (i *Interpreter) SetReadyCB(cb ReadyFunc) {
	if i.active {
		i.readyCB = cb
	}
}

// InputPassthroughFunc sets the passthrough callback.
func (i *Interpreter) InputPassthroughFunc(cb PassthroughFunc) {
	if i.active {
		i.passthrough = cb
	}
}

// CtrlFunc sets the callback for unhandled control bytes.
func (i *Interpreter) CtrlFunc(cb ControlFunc) {
	if i.active {
		i.ctrlFunc = cb
	}
}

// OutFunc sets (or replaces) the output callback.
func (i *Interpreter) OutFunc(cb OutputFunc) {
	if i.active {
		i.output = cb
	}
}

// MutexWaitFunc and MutexReleaseFunc set the critical-section pair
// that brackets output callback invocations.
func (i *Interpreter) MutexWaitFunc(cb MutexFunc) {
	if i.active {
		i.mutexWait = cb
	}
}

func (i *Interpreter) MutexReleaseFunc(cb MutexFunc) {
	if i.active {
		i.mutexRel = cb
	}
}

// SetPassthrough enables or disables passthrough mode.
func (i *Interpreter) SetPassthrough(on bool) {
	if i.active {
		i.passthroughOn = on
	}
}

// LastExit returns the exit code of the most recently completed
// segment.
func (i *Interpreter) LastExit() int { return i.lastExit }

// History returns the history ring (read-only use by callers such as
// cmd/shellcore-demo's history browser).
func (i *Interpreter) History() *HistoryRing { return i.history }

// Commands returns the command table (read-only use by callers such as
// tab-completion front-ends or `help`).
func (i *Interpreter) Commands() *CommandTable { return i.commands }

// InFlightArgv returns the argv of the segment currently being
// dispatched, or nil if none is in flight. A handler that returned
// RetcodeExecutingContinue can use it when Ready is eventually called
// asynchronously, since the slice is kept alive until completion.
func (i *Interpreter) InFlightArgv() []string { return i.inFlightArgv }
