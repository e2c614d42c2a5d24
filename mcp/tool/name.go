package tool

import "strings"

// Name represents a flat tool name derived from a command path.
type Name string

// Normalize rewrites a command or parameter identifier into the form exposed
// to protocol callers. Dashes are idiomatic separators in cobra command and
// flag names but are awkward in schema property names, so they become
// underscores.
func Normalize(identifier string) string {
	return strings.ReplaceAll(identifier, "-", "_")
}

// Join builds the default flat tool name for a command path by normalizing
// every segment and joining with an underscore, e.g. ["app", "child-a"]
// becomes "app_child_a".
func Join(segments []string) Name {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, Normalize(segment))
	}
	return Name(strings.Join(parts, "_"))
}

func (t Name) String() string {
	return string(t)
}
