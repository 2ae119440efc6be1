package clickwatch

import (
	"strings"

	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// DisplayLabel derives the human-facing label for a clicked widget:
// the widget's text when it carries a non-blank one, otherwise its
// internal name. A label showing "Alice" reads as "Alice"; an empty
// label named "lblAge3" reads as "lblAge3"; a panel, which has no
// text at all, reads as its name. Whitespace-only text counts as
// blank.
func DisplayLabel(w ui.Widget) string {
	if w == nil {
		return ""
	}
	if t, ok := w.(ui.Texter); ok {
		if s := t.Text(); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return w.Name()
}
