// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
// Municipality names such as "São Miguel das Missões" keep their accents intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, available, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w > targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}
