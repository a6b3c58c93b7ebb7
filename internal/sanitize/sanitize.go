// Package sanitize maps raw input text onto the canonical cipher alphabet.
//
// Letters are uppercased, digits are kept as-is and everything else is dropped.
// Only ASCII letters and digits survive, so every emitted letter is one of A-Z.
package sanitize

import "strings"

// Char maps a single rune to its canonical form.
// It reports false when the rune has no canonical form and must be dropped.
func Char(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r, true
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	default:
		return 0, false
	}
}

// Text applies Char to every rune of s.
func Text(s string) string {
	var buf strings.Builder

	buf.Grow(len(s))

	for _, r := range s {
		if c, ok := Char(r); ok {
			buf.WriteRune(c)
		}
	}

	return buf.String()
}
