package cmdline

import (
	"strings"
	"testing"
)

func TestNewSeedsReservedVariables(t *testing.T) {
	i, _ := newTestInterpreter()
	want := map[string]string{"PS1": DefaultPrompt, "?": "0", "_": "", "LINES": "24", "COLUMNS": "80"}
	for name, val := range want {
		got, ok := i.variables.Get(name)
		if !ok || got != val {
			t.Errorf("variable %s = (%q, %v), want (%q, true)", name, got, ok, val)
		}
	}
}

func TestPrintfReRendersActiveLine(t *testing.T) {
	i, out := newTestInterpreter()
	feed(i, "typing")
	*out = nil
	i.Printf("async output\r\n")
	joined := strings.Join(*out, "")
	if !strings.Contains(joined, "async output") {
		t.Fatalf("output %q missing the printed text", joined)
	}
	if !strings.Contains(joined, "typing") {
		t.Fatalf("output %q missing the re-rendered edit line", joined)
	}
}

func TestMutexWaitReleaseBracketsOutput(t *testing.T) {
	i, _ := newTestInterpreter()
	var waits, releases int
	i.MutexWaitFunc(func() { waits++ })
	i.MutexReleaseFunc(func() { releases++ })

	i.Printf("hello")
	if waits != 1 || releases != 1 {
		t.Fatalf("waits=%d releases=%d, want 1,1", waits, releases)
	}
}

func TestMutexRecursionGuardDoesNotDeadlockOrDoubleLock(t *testing.T) {
	var waitCalls, releaseCalls int
	var i *Interpreter
	reentered := false
	i = New(func(format string, args ...interface{}) {
		// Simulate a handler/printer that re-enters Printf while the
		// critical section is already held.
		if !reentered {
			reentered = true
			i.Printf("nested\r\n")
		}
	})
	i.MutexWaitFunc(func() { waitCalls++ })
	i.MutexReleaseFunc(func() { releaseCalls++ })

	i.Printf("outer\r\n")

	if waitCalls != 1 || releaseCalls != 1 {
		t.Fatalf("waitCalls=%d releaseCalls=%d, want 1,1 (recursion guard should collapse nested Printf into one critical section)", waitCalls, releaseCalls)
	}
}

func TestRequestScreenSizeEmitsQuery(t *testing.T) {
	i, out := newTestInterpreter()
	i.RequestScreenSize()
	joined := strings.Join(*out, "")
	if !strings.Contains(joined, "\x1B[6n") {
		t.Fatalf("output %q missing the screen-size query", joined)
	}
}

func TestEchoOffSuppressesRedrawButPrintsOnCommit(t *testing.T) {
	i, out := newTestInterpreter()
	i.EchoOff()
	*out = nil
	feed(i, "echo hi\r")
	joined := strings.Join(*out, "")
	if !strings.Contains(joined, "echo hi\r\n") {
		t.Fatalf("output %q should contain the accepted line once, followed by CRLF", joined)
	}
}

func TestNewWithNilOutputDiscardsRendering(t *testing.T) {
	i := New(nil)
	// Must not panic despite no output callback configured.
	feed(i, "echo hi\r")
	i.Printf("more\r\n")
}
