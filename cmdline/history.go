package cmdline

// DefaultHistoryMax is the default number of entries the ring keeps.
const DefaultHistoryMax = 31

// MaxHistoryMax is the largest configurable history size.
const MaxHistoryMax = 255

// HistoryEntry is one accepted command line.
type HistoryEntry struct {
	Text string
}

// HistoryRing is a bounded, oldest-evicted-first deque of accepted
// lines, plus a browsing cursor distinct from the line currently being
// edited. It generalizes the single-slot hpush/hprev shape of a
// classic line-editor history to a multi-entry ring with a scratch
// slot for the in-progress edit.
type HistoryRing struct {
	entries []HistoryEntry
	max     int

	// cursor is the browsing position: -1 means "not browsing / on the
	// scratch slot", otherwise an index into entries counting from the
	// most recent (0 = newest).
	cursor  int
	scratch string
}

// NewHistoryRing returns a ring with the given max size (0 means
// DefaultHistoryMax, clamped to MaxHistoryMax).
func NewHistoryRing(max int) *HistoryRing {
	if max <= 0 {
		max = DefaultHistoryMax
	}
	if max > MaxHistoryMax {
		max = MaxHistoryMax
	}
	return &HistoryRing{max: max, cursor: -1}
}

// Len returns the number of entries currently held.
func (h *HistoryRing) Len() int { return len(h.entries) }

// Max returns the configured capacity.
func (h *HistoryRing) Max() int { return h.max }

// SetMax resizes the ring, evicting the oldest entries if it shrinks.
func (h *HistoryRing) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	if max > MaxHistoryMax {
		max = MaxHistoryMax
	}
	h.max = max
	h.trim()
}

func (h *HistoryRing) trim() {
	for len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Entries returns the entries oldest-first (index 0 is the oldest kept).
func (h *HistoryRing) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Push records a committed line. Empty lines are dropped; a line equal
// to the most recent entry is deduplicated away.
func (h *HistoryRing) Push(text string) {
	if text == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1].Text == text {
		return
	}
	h.entries = append(h.entries, HistoryEntry{Text: text})
	h.trim()
}

// Clear empties the ring (the `history clear` builtin).
func (h *HistoryRing) Clear() {
	h.entries = nil
	h.ResetCursor()
}

// ResetCursor returns the browsing cursor to the scratch slot; called
// on line commit, on Ctrl-C, and by Clear.
func (h *HistoryRing) ResetCursor() {
	h.cursor = -1
	h.scratch = ""
}

// entryAt returns the entry `back` positions before the newest one
// (back=0 is newest), or ok=false if out of range.
func (h *HistoryRing) entryAt(back int) (string, bool) {
	n := len(h.entries)
	if back < 0 || back >= n {
		return "", false
	}
	return h.entries[n-1-back].Text, true
}

// Previous moves the cursor one step further into the past, capturing
// the caller's current edit as the scratch value the first time it is
// called, so it can be restored once the cursor returns past the
// newest entry. It returns the text to load into the line buffer and
// whether the cursor actually moved.
func (h *HistoryRing) Previous(currentEdit string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	next := h.cursor + 1
	if next >= len(h.entries) {
		return "", false
	}
	if h.cursor == -1 {
		h.scratch = currentEdit
	}
	h.cursor = next
	text, _ := h.entryAt(h.cursor)
	return text, true
}

// Next moves the cursor one step toward the present. Moving forward
// past the newest entry restores the scratch slot.
func (h *HistoryRing) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	if h.cursor == 0 {
		text := h.scratch
		h.cursor = -1
		h.scratch = ""
		return text, true
	}
	h.cursor--
	text, _ := h.entryAt(h.cursor)
	return text, true
}

// First jumps to the oldest entry (CSI 5~) without touching scratch.
func (h *HistoryRing) First() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.cursor = len(h.entries) - 1
	text, _ := h.entryAt(h.cursor)
	return text, true
}

// Last jumps to the newest entry (CSI 6~) without touching scratch.
func (h *HistoryRing) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.cursor = 0
	text, _ := h.entryAt(h.cursor)
	return text, true
}
