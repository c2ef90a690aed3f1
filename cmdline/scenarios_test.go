package cmdline

import (
	"strings"
	"testing"
)

// TestScenarios drives the literal byte sequences from spec.md §8's
// end-to-end scenario table and checks the documented observable.
func TestScenarios(t *testing.T) {
	t.Run("1_echo_roundtrip", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, "echo Hi!\r")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "Hi! \r\n") {
			t.Fatalf("output = %q, want it to contain %q", joined, "Hi! \r\n")
		}
		if i.LastExit() != int(RetcodeSuccess) {
			t.Fatalf("LastExit() = %d, want 0", i.LastExit())
		}
	})

	t.Run("2_echo_quoted_spaces", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, `echo   "foo   faa"`+"\r")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "foo   faa \r\n") {
			t.Fatalf("output = %q, want it to contain %q", joined, "foo   faa \r\n")
		}
	})

	t.Run("3_history_back_shows_collapsed_spacing", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, "echo foo   faa\r")
		*out = nil
		feed(i, "\x1B[A")
		if i.line.String() != "echo foo faa" {
			t.Fatalf("restored line = %q, want collapsed spacing %q", i.line.String(), "echo foo faa")
		}
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "echo foo faa ") {
			t.Fatalf("redraw output = %q, want it to show collapsed spacing", joined)
		}
	})

	t.Run("4_history_back_twice", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, "echo test-1\r")
		feed(i, "echo test-2\r")
		*out = nil
		feed(i, "\x1B[A\x1B[A")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "echo test-1 ") {
			t.Fatalf("redraw output = %q, want it to show %q", joined, "echo test-1 ")
		}
	})

	t.Run("5_alias_expansion", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, "alias p echo\r")
		*out = nil
		feed(i, "p toimii\r")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "toimii \r\n") {
			t.Fatalf("output = %q, want it to contain %q", joined, "toimii \r\n")
		}
		if i.LastExit() != int(RetcodeSuccess) {
			t.Fatalf("LastExit() = %d, want 0", i.LastExit())
		}
	})

	t.Run("6_variable_expansion", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, `set foo "hello world"`+"\r")
		*out = nil
		feed(i, "echo $foo\r")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "hello world \r\n") {
			t.Fatalf("output = %q, want it to contain %q", joined, "hello world \r\n")
		}
	})

	t.Run("7_short_circuit_and", func(t *testing.T) {
		i, _ := newTestInterpreter()
		feed(i, "true && false\r")
		if i.LastExit() != int(RetcodeFail) {
			t.Fatalf("LastExit() = %d, want %d", i.LastExit(), RetcodeFail)
		}
	})

	t.Run("8_unknown_command_then_semicolon_continues", func(t *testing.T) {
		i, out := newTestInterpreter()
		feed(i, "setd x 1;echo hi\r")
		joined := strings.Join(*out, "")
		if !strings.Contains(joined, "Command 'setd' not found.") {
			t.Fatalf("output = %q, want the not-found message", joined)
		}
		if !strings.Contains(joined, "hi ") {
			t.Fatalf("output = %q, want the second segment to still run", joined)
		}
	})

	t.Run("9_tab_completion_cycle", func(t *testing.T) {
		i, out := newTestInterpreter()
		for _, name := range []string{"role", "route", "rile"} {
			i.Add(name, func(i *Interpreter, argv []string) Retcode { return RetcodeSuccess }, "", "")
		}
		feed(i, "r")
		var redraws []string
		for n := 0; n < 3; n++ {
			*out = nil
			i.CharInput('\t')
			redraws = append(redraws, strings.Join(*out, ""))
		}
		want := []string{"role ", "route ", "rile "}
		for idx, w := range want {
			if !strings.Contains(redraws[idx], w) {
				t.Errorf("redraw[%d] = %q, want it to contain %q", idx, redraws[idx], w)
			}
		}
	})

	t.Run("10_cursor_motion_and_insert", func(t *testing.T) {
		i, _ := newTestInterpreter()
		feed(i, "echo hello word")
		feed(i, "\x1B[D") // cursor left once
		feed(i, "l")
		if i.line.String() != "echo hello world" {
			t.Fatalf("line = %q, want %q", i.line.String(), "echo hello world")
		}
		if i.line.Cursor() != len("echo hello world")-1 {
			t.Fatalf("cursor = %d, want one left of end (%d)", i.line.Cursor(), len("echo hello world")-1)
		}
	})
}
