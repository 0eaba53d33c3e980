package model

// Truncate shortens s to at most max runes, replacing the tail with an
// ellipsis. Display helper for table renderers; wire values are never cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
