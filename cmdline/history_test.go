package cmdline

import "testing"

func TestHistoryPushDedupAdjacent(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("echo a")
	h.Push("echo a")
	h.Push("echo b")
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (adjacent duplicate dropped)", h.Len())
	}
}

func TestHistoryPushEmptyIgnored(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("")
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryEvictsOldestWhenFull(t *testing.T) {
	h := NewHistoryRing(2)
	h.Push("one")
	h.Push("two")
	h.Push("three")
	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len() = %d, want 2", len(entries))
	}
	if entries[0].Text != "two" || entries[1].Text != "three" {
		t.Fatalf("Entries() = %#v, want [two three]", entries)
	}
}

func TestHistoryMaxNeverExceeded(t *testing.T) {
	h := NewHistoryRing(3)
	for i := 0; i < 50; i++ {
		h.Push(string(rune('a' + i%26)))
	}
	if h.Len() > h.Max() {
		t.Fatalf("Len() = %d exceeds Max() = %d", h.Len(), h.Max())
	}
}

func TestHistoryPreviousAndScratchRestore(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("first")
	h.Push("second")

	text, ok := h.Previous("typing...")
	if !ok || text != "second" {
		t.Fatalf("Previous() = (%q, %v), want (second, true)", text, ok)
	}
	text, ok = h.Previous("typing...")
	if !ok || text != "first" {
		t.Fatalf("Previous() = (%q, %v), want (first, true)", text, ok)
	}
	// No more entries; cursor doesn't move.
	text, ok = h.Previous("typing...")
	if ok {
		t.Fatalf("Previous() at oldest = (%q, %v), want ok=false", text, ok)
	}

	text, ok = h.Next()
	if !ok || text != "second" {
		t.Fatalf("Next() = (%q, %v), want (second, true)", text, ok)
	}
	text, ok = h.Next()
	if !ok || text != "typing..." {
		t.Fatalf("Next() past newest = (%q, %v), want scratch restored", text, ok)
	}
}

func TestHistoryFirstLastDoNotTouchScratch(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("a")
	h.Push("b")
	h.Push("c")

	h.Previous("scratch-text")
	if text, ok := h.First(); !ok || text != "a" {
		t.Fatalf("First() = (%q, %v), want (a, true)", text, ok)
	}
	if text, ok := h.Last(); !ok || text != "c" {
		t.Fatalf("Last() = (%q, %v), want (c, true)", text, ok)
	}
	// scratch should be unaffected by First/Last; Next() from newest
	// should still restore it.
	text, ok := h.Next()
	if !ok || text != "scratch-text" {
		t.Fatalf("Next() after Last() = (%q, %v), want scratch restored", text, ok)
	}
}

func TestHistoryResetCursor(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("a")
	h.Previous("scratch")
	h.ResetCursor()
	if _, ok := h.Next(); ok {
		t.Fatalf("Next() after ResetCursor should report ok=false")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("a")
	h.Push("b")
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", h.Len())
	}
}

func TestHistorySetMaxClamped(t *testing.T) {
	h := NewHistoryRing(10)
	h.SetMax(1000)
	if h.Max() != MaxHistoryMax {
		t.Fatalf("Max() = %d, want clamp to %d", h.Max(), MaxHistoryMax)
	}
}

func TestHistorySetMaxShrinkEvicts(t *testing.T) {
	h := NewHistoryRing(10)
	h.Push("a")
	h.Push("b")
	h.Push("c")
	h.SetMax(1)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if h.Entries()[0].Text != "c" {
		t.Fatalf("Entries()[0] = %q, want %q", h.Entries()[0].Text, "c")
	}
}
