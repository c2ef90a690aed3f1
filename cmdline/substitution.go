package cmdline

import "strings"

// expandAlias performs the alias pass: if the first whitespace-
// delimited word of line exactly matches a registered alias name, that
// word is replaced with the alias value. The expansion runs once; an
// alias value may itself start with another alias name without
// forming a loop.
func expandAlias(line string, aliases *NameValueTable) string {
	trimmed := strings.TrimLeft(line, " \t")
	leadSpace := line[:len(line)-len(trimmed)]

	end := strings.IndexAny(trimmed, " \t")
	var head, rest string
	if end == -1 {
		head, rest = trimmed, ""
	} else {
		head, rest = trimmed[:end], trimmed[end:]
	}
	if head == "" {
		return line
	}

	value, ok := aliases.Get(head)
	if !ok {
		return line
	}
	return leadSpace + value + rest
}

// isVarNameStart/isVarNameByte define the `[A-Za-z_][A-Za-z0-9_]*`
// variable-name grammar accepted after a `$`.
func isVarNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isVarNameByte(c byte) bool {
	return isVarNameStart(c) || (c >= '0' && c <= '9')
}

// expandVariables replaces every `$name` with the value of variable
// name, or leaves it as the literal `$name` if unset.
func expandVariables(line string, variables *NameValueTable) string {
	if !strings.ContainsRune(line, '$') {
		return line
	}

	var out strings.Builder
	i, n := 0, len(line)
	for i < n {
		c := line[i]
		if c != '$' || i+1 >= n || !isVarNameStart(line[i+1]) {
			out.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < n && isVarNameByte(line[j]) {
			j++
		}
		name := line[i+1 : j]
		if value, ok := variables.Get(name); ok {
			out.WriteString(value)
		} else {
			out.WriteByte('$')
			out.WriteString(name)
		}
		i = j
	}
	return out.String()
}

// substitute runs both passes in order: alias expansion at the head,
// then variable expansion everywhere.
func substitute(line string, aliases, variables *NameValueTable) string {
	return expandVariables(expandAlias(line, aliases), variables)
}
