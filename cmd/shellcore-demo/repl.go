package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/kir-gadjello/shellcore/cmdline"
)

func isInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runREPL wires stdin/stdout to an Interpreter byte-at-a-time and blocks
// until the user exits (end of input or a read error on stdin, or the
// `exit` command).
func runREPL(cfg *presetConfig) error {
	interp := cmdline.New(func(format string, args ...interface{}) {
		fmt.Fprintf(os.Stdout, format, args...)
	})
	registerCopyCommand(interp)
	registerExitCommand(interp)
	applyPreset(interp, cfg)

	stdinFd := int(os.Stdin.Fd())
	raw := isInteractive(uintptr(stdinFd))

	if raw {
		oldState, err := term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(stdinFd, oldState)
	}

	reportSize := func() {
		if w, h, err := term.GetSize(stdinFd); err == nil {
			interp.VariableAdd("COLUMNS", strconv.Itoa(w))
			interp.VariableAdd("LINES", strconv.Itoa(h))
		}
	}
	reportSize()

	if raw {
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		go func() {
			for range winch {
				reportSize()
			}
		}()
		defer signal.Stop(winch)
	}

	done := make(chan struct{})
	var closeDone sync.Once
	stop := func() { closeDone.Do(func() { close(done) }) }

	interp.SetReadyCB(func(lastExit int) {
		if exitRequested {
			stop()
		}
	})

	buf := make([]byte, 1)
	go func() {
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				interp.CharInput(buf[0])
			}
			if err != nil {
				stop()
				return
			}
			if exitRequested {
				return
			}
		}
	}()

	<-done
	fmt.Fprintln(os.Stdout)
	return nil
}

func applyPreset(interp *cmdline.Interpreter, cfg *presetConfig) {
	if cfg == nil {
		return
	}
	if cfg.PS1 != "" {
		interp.VariableAdd("PS1", cfg.PS1)
	}
	if cfg.HistorySize > 0 {
		interp.HistorySize(cfg.HistorySize)
	}
	for name, value := range cfg.Aliases {
		interp.AliasAdd(name, value)
	}
	for name, value := range cfg.Variables {
		interp.VariableAdd(name, value)
	}
}

// exitRequested is set by the `exit` builtin registered in
// registerExitCommand; runREPL's goroutines poll it to unwind cleanly
// instead of calling os.Exit mid-read.
var exitRequested bool

func registerExitCommand(interp *cmdline.Interpreter) {
	interp.Add("exit", func(i *cmdline.Interpreter, argv []string) cmdline.Retcode {
		exitRequested = true
		return cmdline.RetcodeSuccess
	}, "exit the shell", "exit")
}
