package main

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/kir-gadjello/shellcore/cmdline"
)

// registerCopyCommand adds `copy <text...>` / `copy -last`, which writes
// text to the system clipboard instead of the terminal.
func registerCopyCommand(interp *cmdline.Interpreter) {
	interp.Add("copy", builtinCopy, "copy text or the last command to the clipboard",
		"copy [-last] [text...]\r\n\nWith -last, copies the most recently executed line instead of\r\nits arguments.")
}

func builtinCopy(i *cmdline.Interpreter, argv []string) cmdline.Retcode {
	args := argv[1:]

	if cmdline.HasOption(args, "-last") {
		// The newest entry is the line running this command; the one
		// before it is the previously executed line.
		entries := i.History().Entries()
		if len(entries) < 2 {
			i.Printf("No history to copy.\r\n")
			return cmdline.RetcodeFail
		}
		text := entries[len(entries)-2].Text
		if err := clipboard.WriteAll(text); err != nil {
			i.Printf("Clipboard error: %v\r\n", err)
			return cmdline.RetcodeFail
		}
		i.Printf("Copied last command.\r\n")
		return cmdline.RetcodeSuccess
	}

	if len(args) == 0 {
		return cmdline.RetcodeInvalidParameters
	}
	if err := clipboard.WriteAll(strings.Join(args, " ")); err != nil {
		i.Printf("Clipboard error: %v\r\n", err)
		return cmdline.RetcodeFail
	}
	i.Printf("Copied.\r\n")
	return cmdline.RetcodeSuccess
}
