package tui

import "github.com/mattn/go-runewidth"

// RuneWidth returns the display width of ch in cells, at least 1
func RuneWidth(ch rune) int {
	if w := runewidth.RuneWidth(ch); w > 0 {
		return w
	}
	return 1
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	n := 0
	for _, ch := range s {
		n += RuneWidth(ch)
	}
	return n
}

// Truncate shortens s to maxW display cells, ending with … when cut
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}
