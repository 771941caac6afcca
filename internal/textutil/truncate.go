// Package textutil holds small string helpers shared by list and detail views.
package textutil

import "unicode/utf8"

// Ellipsis is appended to text shortened by Truncate.
const Ellipsis = "…"

// CardLength is the default limit for card descriptions and summaries.
const CardLength = 120

// Truncate returns s unchanged when it has at most n characters, otherwise its
// first n characters followed by Ellipsis. A negative n is treated as zero.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i] + Ellipsis
}

// TruncateCard shortens s to CardLength.
func TruncateCard(s string) string {
	return Truncate(s, CardLength)
}
