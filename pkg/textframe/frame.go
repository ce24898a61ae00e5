// Package textframe draws a single line of text inside an ASCII box.
package textframe

import (
	"strings"
	"unicode/utf16"
)

// padding is the width added around the text: "| " on the left, " |" on the right.
const padding = 4

// Border returns the dash line used above and below a text of width n.
func Border(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("-", n+padding)
}

// Width is the length of text in UTF-16 code units, so characters outside
// the Basic Multilingual Plane (most emoji) count as two.
func Width(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Frame returns text wrapped in a three-line box:
//
//	------
//	| Hi |
//	------
//
// The result has no trailing newline. Embedded newlines are kept as-is, so a
// multi-line text produces a broken frame.
func Frame(text string) string {
	border := Border(Width(text))

	var b strings.Builder
	b.Grow(2*len(border) + len(text) + padding + 2)
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString("| ")
	b.WriteString(text)
	b.WriteString(" |")
	b.WriteByte('\n')
	b.WriteString(border)
	return b.String()
}
