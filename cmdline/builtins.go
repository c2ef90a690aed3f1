package cmdline

import (
	"strings"

	"github.com/kir-gadjello/shellcore/cmdline/vt100"
)

// registerBuiltins seeds the fixed set of builtin commands every
// interpreter starts with. Called by New and by Reset (which re-seeds
// them after dropping everything else).
func registerBuiltins(i *Interpreter) {
	i.Add("help", builtinHelp, "list commands or show one command's manual",
		"help [name]\r\n\nWith no argument, lists every registered command with its\r\nshort info. With a name, prints that command's manual.")

	i.Add("echo", builtinEcho, "print arguments",
		"echo [-on|-off|text...]\r\n\n-on/-off toggle line echo. Otherwise prints the arguments\r\njoined by a space.")

	i.Add("alias", builtinAlias, "list, set, or delete aliases",
		"alias [name [value]]\r\n\nWith no argument, lists all aliases. With a name only,\r\ndeletes that alias. With a name and value, sets it.")

	i.Add("unalias", builtinUnalias, "delete an alias",
		"unalias name")

	i.Add("set", builtinSet, "list or set variables",
		"set [name[=value] | name value]\r\n\nWith no argument, lists all variables.")

	i.Add("unset", builtinUnset, "delete a variable",
		"unset name")

	i.Add("true", builtinTrue, "always succeed", "")
	i.Add("false", builtinFalse, "always fail", "")

	i.Add("history", builtinHistory, "list or clear command history",
		"history [clear]")

	i.Add("clear", builtinClear, "clear the screen", "")

	i.Add("_", builtinRepeat, "repeat the last executed line", "")
}

func builtinHelp(i *Interpreter, argv []string) Retcode {
	args := argv[1:]
	if len(args) == 0 {
		for _, name := range i.commands.Names() {
			cmd, _ := i.commands.Get(name)
			i.Printf("%-12s %s\r\n", cmd.Name, cmd.Info)
		}
		return RetcodeSuccess
	}

	cmd, ok := i.commands.Get(args[0])
	if !ok {
		i.Printf("Command '%s' not found.\r\n", args[0])
		return RetcodeNotFound
	}
	if cmd.Man != "" {
		i.Printf("%s\r\n", cmd.Man)
	} else {
		i.Printf("%s\r\n", cmd.Info)
	}
	return RetcodeSuccess
}

func builtinEcho(i *Interpreter, argv []string) Retcode {
	args := argv[1:]
	if len(args) == 1 {
		switch args[0] {
		case "-on":
			i.EchoOn()
			return RetcodeSuccess
		case "-off":
			i.EchoOff()
			return RetcodeSuccess
		}
	}
	i.Printf("%s \r\n", strings.Join(args, " "))
	return RetcodeSuccess
}

func builtinAlias(i *Interpreter, argv []string) Retcode {
	args := argv[1:]
	switch len(args) {
	case 0:
		for _, name := range i.aliases.Names() {
			value, _ := i.aliases.Get(name)
			i.Printf("%s=%s\r\n", name, value)
		}
	case 1:
		i.aliases.Delete(args[0])
	default:
		i.aliases.Set(args[0], strings.Join(args[1:], " "))
	}
	return RetcodeSuccess
}

func builtinUnalias(i *Interpreter, argv []string) Retcode {
	if len(argv) != 2 {
		return RetcodeInvalidParameters
	}
	i.aliases.Delete(argv[1])
	return RetcodeSuccess
}

func builtinSet(i *Interpreter, argv []string) Retcode {
	args := argv[1:]
	if len(args) == 0 {
		for _, name := range i.variables.Names() {
			value, _ := i.variables.Get(name)
			i.Printf("%s=%s\r\n", name, value)
		}
		return RetcodeSuccess
	}

	if idx := strings.IndexByte(args[0], '='); idx >= 0 {
		name, value := args[0][:idx], args[0][idx+1:]
		i.variables.Set(name, value)
		return RetcodeSuccess
	}

	if len(args) < 2 {
		return RetcodeInvalidParameters
	}
	i.variables.Set(args[0], strings.Join(args[1:], " "))
	return RetcodeSuccess
}

func builtinUnset(i *Interpreter, argv []string) Retcode {
	if len(argv) != 2 {
		return RetcodeInvalidParameters
	}
	i.variables.Delete(argv[1])
	return RetcodeSuccess
}

func builtinTrue(i *Interpreter, argv []string) Retcode  { return RetcodeSuccess }
func builtinFalse(i *Interpreter, argv []string) Retcode { return RetcodeFail }

func builtinHistory(i *Interpreter, argv []string) Retcode {
	args := argv[1:]
	if len(args) == 1 && args[0] == "clear" {
		i.history.Clear()
		return RetcodeSuccess
	}
	for idx, entry := range i.history.Entries() {
		i.Printf("[%d]: %s\r\n", idx, entry.Text)
	}
	return RetcodeSuccess
}

func builtinClear(i *Interpreter, argv []string) Retcode {
	i.Printf("%s", vt100.ClearScreen)
	return RetcodeSuccess
}

// builtinRepeat re-runs the line stored in `_`. Each of its segments
// is dispatched synchronously, honoring the same operator
// short-circuit rules as the main pipeline, but without going through
// the execution queue: `_` is itself a queue entry, and feeding its
// own repeat back into the queue it is currently the head of would
// make exit-code bookkeeping ambiguous (which run's result is "the"
// result of this segment?). A deferred (RetcodeExecutingContinue) or
// busy (RetcodeBusy) segment inside the repeated line can't be
// represented synchronously, so it's returned as-is and ends the
// replay early.
func builtinRepeat(i *Interpreter, argv []string) Retcode {
	text, ok := i.variables.Get("_")
	if !ok || text == "" {
		return RetcodeFail
	}

	segments := splitSegments(text)
	last := RetcodeSuccess
	pending := OpNone

	for _, seg := range segments {
		switch pending {
		case OpAnd:
			if last != RetcodeSuccess {
				pending = seg.Op
				continue
			}
		case OpOr:
			if last == RetcodeSuccess {
				pending = seg.Op
				continue
			}
		}

		sub := substitute(seg.Text, i.aliases, i.variables)
		av := Tokenize(sub, i.maxArgs)
		if len(av) == 0 {
			pending = seg.Op
			continue
		}

		cmd, ok := i.commands.Get(av[0])
		if !ok {
			i.Printf("Command '%s' not found.\r\n", av[0])
			last = RetcodeCommandNotFound
		} else {
			last = cmd.Handler(i, av)
			if last == RetcodeExecutingContinue || last == RetcodeBusy {
				return last
			}
		}
		pending = seg.Op
	}
	return last
}
