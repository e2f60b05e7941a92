package engine

import "strings"

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Preview returns a short single-line excerpt of raw bytes for error
// messages, capped at n bytes.
func Preview(b []byte, n int) string {
	return CollapseWhitespace(Truncate(string(b), n))
}

// CollapseWhitespace folds line breaks and runs of whitespace into
// single spaces and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
