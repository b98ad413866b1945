package common

import (
	"fmt"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PathSeparator separates node names in hierarchy paths.
const PathSeparator = "/"

// JoinPath joins hierarchy path elements, skipping empty ones.
func JoinPath(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, PathSeparator)
}

// UniqueName returns base if taken reports false for it, otherwise the first
// of "base 2", "base 3", ... that is free.
func UniqueName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s %d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}

// MakeFilenameSafe replaces characters that are not portable in file names.
func MakeFilenameSafe(s string) string {
	var sb strings.Builder

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == ' ':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "_"
	}

	return out
}
