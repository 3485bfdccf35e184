package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// argRe matches one key=value fragment. Values may be single-quoted,
// double-quoted, or bare; bare values run until the next comma.
var argRe = regexp.MustCompile(`(\w+)\s*=\s*(?:'([^']*)'|"([^"]*)"|([^,'"]*?))\s*(?:,|$)`)

// ParseArgs converts the text between an invocation's parentheses into typed
// key/value pairs. Fragments that do not fit the key=value grammar are
// skipped; a duplicate key keeps its last occurrence. The result is never
// nil.
func ParseArgs(raw string) map[string]any {
	args := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return args
	}
	for _, idx := range argRe.FindAllStringSubmatchIndex(raw, -1) {
		key := raw[idx[2]:idx[3]]
		var value string
		switch {
		case idx[4] >= 0: // single-quoted
			value = raw[idx[4]:idx[5]]
		case idx[6] >= 0: // double-quoted
			value = raw[idx[6]:idx[7]]
		default:
			value = raw[idx[8]:idx[9]]
		}
		args[key] = coerceValue(value)
	}
	return args
}

// coerceValue derives the value type purely from lexical shape: digits make
// an int, digits with one decimal point make a float, true/false make a
// bool, anything else stays a string.
func coerceValue(value string) any {
	if isDigits(value) {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	if strings.Count(value, ".") == 1 && isDigits(strings.Replace(value, ".", "", 1)) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	if strings.EqualFold(value, "true") {
		return true
	}
	if strings.EqualFold(value, "false") {
		return false
	}
	return value
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
