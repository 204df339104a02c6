package util

import (
	"strings"
)

// Trunc truncates the input string to at most maxRunes runes and reports whether it has been truncated.
// It is UTF8-safe, but does not care for HTML.
func Trunc(s string, maxRunes int) (string, bool) {
	s = strings.TrimSpace(s)
	var runes = 0
	for i := range s {
		if runes == maxRunes {
			return strings.TrimSpace(s[:i]), true // trim spaces again
		}
		runes++
	}
	return s, false
}
