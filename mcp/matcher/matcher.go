package matcher

import "strings"

// Match reports whether a tool name satisfies pattern: "*" matches anything,
// a trailing "*" matches by prefix, anything else requires an exact match.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	default:
		return name == pattern
	}
}
