package utils

import (
	"strings"
	"unicode"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsAlphanumeric reports whether s is non-empty and made only of letters and
// numeric characters (digits, superscripts, vulgar fractions).
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// MaskTail hides all but the last n runes of s.
func MaskTail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.Repeat("*", len(r)-n) + string(r[len(r)-n:])
}
