// Package textutil provides unicode-aware text utilities for shell rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended to truncated strings.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, avail, "") + TruncateEllipsis
}

// Blank returns a run of spaces as wide as s, used for content that keeps its
// layout slot while invisible.
func Blank(s string) string {
	return runewidth.FillRight("", VisualWidth(s))
}
