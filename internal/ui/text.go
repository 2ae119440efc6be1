package ui

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
)

// StringWidth returns the number of terminal cells s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// TruncateToCells returns the longest prefix of s, cut on grapheme
// cluster boundaries, that occupies at most max cells.
func TruncateToCells(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= max {
		return s
	}

	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if width+w > max {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	return b.String()
}

// drawText paints s starting at (x, y), truncated to maxWidth cells,
// and returns the number of cells written. Wide graphemes get their
// trailing cells blanked so stale content cannot show through.
func drawText(c Canvas, x, y, maxWidth int, s string, style backend.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if col-x+w > maxWidth {
			break
		}
		c.SetCell(col, y, g.Runes()[0], style)
		for i := 1; i < w; i++ {
			c.SetCell(col+i, y, ' ', style)
		}
		col += w
	}
	return col - x
}
