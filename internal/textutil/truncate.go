package textutil

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks the point where TruncateMiddle removed text.
const Ellipsis = '…'

// ScalarCount returns the number of Unicode scalar values in s.
func ScalarCount(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateMiddle shortens s when it holds more than limit scalar values by
// removing a span around its midpoint and inserting a single Ellipsis at the
// cut. The kept text is at most limit scalars, so the result is at most
// limit+1. Strings within the limit are returned unchanged.
func TruncateMiddle(s string, limit int) string {
	runes := []rune(s)
	n := len(runes)
	if limit < 1 || n <= limit {
		return s
	}

	half := (n-limit)/2 + 1
	start := n/2 - half
	end := n/2 + half - n%2 // inclusive
	if start < 0 {
		start = 0
	}
	if end > n-1 {
		end = n - 1
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(string(runes[:start]))
	b.WriteRune(Ellipsis)
	b.WriteString(string(runes[end+1:]))
	return b.String()
}

// PadRight space-fills s to width scalar values.
func PadRight(s string, width int) string {
	if pad := width - ScalarCount(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
