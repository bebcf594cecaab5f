package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keep reports whether the rune decoded at some offset survives Sanitize
func keep(r rune, size int) bool {
	if r == utf8.RuneError && size == 1 {
		return false
	}
	return !unicode.IsControl(r)
}

// Sanitize drops control characters (C0, DEL, C1) and bytes that are not valid UTF-8.
// Words never carry line structure, so tab and newline go too. Clean input is returned as is
func Sanitize(s string) string {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return sanitizeFrom(s, i)
		}
		i += size
	}
	return s
}

func sanitizeFrom(s string, i int) string {
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
