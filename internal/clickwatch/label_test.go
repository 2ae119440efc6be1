package clickwatch

import (
	"testing"

	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

func TestDisplayLabel(t *testing.T) {
	win, pnl, name, age, btn := newTestForm(t)

	tests := []struct {
		name string
		w    ui.Widget
		want string
	}{
		{"label with text reads as its text", name, "Alice"},
		{"empty label falls back to its name", age, "lblAge3"},
		{"panel has no text and reads as its name", pnl, "pnlPeople"},
		{"button reads as its caption", btn, "Quit"},
		{"window reads as its title", win, "Slow Flow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayLabel(tt.w); got != tt.want {
				t.Errorf("DisplayLabel(%s) = %q, want %q", tt.w.Name(), got, tt.want)
			}
		})
	}
}

func TestDisplayLabelNil(t *testing.T) {
	if got := DisplayLabel(nil); got != "" {
		t.Errorf("DisplayLabel(nil) = %q, want empty", got)
	}
}

func TestDisplayLabelWhitespaceOnlyText(t *testing.T) {
	loop := ui.NewLoop()
	win := ui.NewWindow(loop, "main", "Slow Flow")
	defer win.Dispose()
	lbl := ui.NewLabel(win, "lblAge5", "   ")

	if got := DisplayLabel(lbl); got != "lblAge5" {
		t.Errorf("DisplayLabel(whitespace label) = %q, want its name %q", got, "lblAge5")
	}
}

func TestDisplayLabelUntitledWindow(t *testing.T) {
	loop := ui.NewLoop()
	win := ui.NewWindow(loop, "main", "")
	defer win.Dispose()

	if got := DisplayLabel(win); got != "main" {
		t.Errorf("DisplayLabel(untitled window) = %q, want its name %q", got, "main")
	}
}

// TestClickThroughLabelDerivation drives the three canonical presses
// end to end: hit-test, dispatch, deferred delivery, label
// derivation.
func TestClickThroughLabelDerivation(t *testing.T) {
	tests := []struct {
		name      string
		p         ui.Point
		wantLabel string
	}{
		{"press on a populated name label", ui.Point{X: 5, Y: 3}, "Alice"},
		{"press on an empty age label", ui.Point{X: 21, Y: 5}, "lblAge3"},
		{"press on the panel background", ui.Point{X: 3, Y: 9}, "pnlPeople"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, _, _, _, _ := newTestForm(t)
			f := New()
			f.Register(win)
			got := collectClicks(win)

			pressAt(win, tt.p)
			win.Loop().RunPending()

			if len(*got) != 1 {
				t.Fatalf("subscriber saw %d clicks, want 1", len(*got))
			}
			if gotLabel := DisplayLabel((*got)[0].Target); gotLabel != tt.wantLabel {
				t.Errorf("derived label = %q, want %q", gotLabel, tt.wantLabel)
			}
		})
	}
}
