package cmdline

import (
	"strconv"
	"time"
)

// ParamIndex returns the index of name within argv, or -1 if absent.
// Handlers use it to locate a flag before reading the value that
// follows it.
func ParamIndex(argv []string, name string) int {
	for idx, a := range argv {
		if a == name {
			return idx
		}
	}
	return -1
}

// ParamVal returns the argv entry immediately after index (typically
// the value following a flag located with ParamIndex), and whether it
// exists.
func ParamVal(argv []string, index int) (string, bool) {
	if index < 0 || index+1 >= len(argv) {
		return "", false
	}
	return argv[index+1], true
}

// ParamInt parses the value following index as a base-10 integer.
func ParamInt(argv []string, index int) (int, bool) {
	v, ok := ParamVal(argv, index)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParamBool parses the value following index as a boolean. Accepts the
// same spellings as strconv.ParseBool plus "on"/"off" and "yes"/"no".
func ParamBool(argv []string, index int) (bool, bool) {
	v, ok := ParamVal(argv, index)
	if !ok {
		return false, false
	}
	switch v {
	case "on", "yes":
		return true, true
	case "off", "no":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// ParamFloat parses the value following index as a float64.
func ParamFloat(argv []string, index int) (float64, bool) {
	v, ok := ParamVal(argv, index)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// timestampLayouts are tried in order by ParamTimestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParamTimestamp parses the value following index as a timestamp,
// trying RFC3339 first and falling back to a couple of common layouts.
func ParamTimestamp(argv []string, index int) (time.Time, bool) {
	v, ok := ParamVal(argv, index)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParamLast returns the last argv entry, or "" if argv is empty.
func ParamLast(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	return argv[len(argv)-1]
}

// HasOption reports whether argv contains option verbatim.
func HasOption(argv []string, option string) bool {
	return ParamIndex(argv, option) >= 0
}
