package ui

import (
	"testing"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "Alice", 5},
		{"wide cjk", "日本", 4},
		{"mixed", "a日b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestTruncateToCells(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"fits", "Alice", 10, "Alice"},
		{"exact", "Alice", 5, "Alice"},
		{"cut", "Alice", 3, "Ali"},
		{"zero", "Alice", 0, ""},
		{"negative", "Alice", -1, ""},
		{"wide not split", "日本", 3, "日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToCells(tt.s, tt.max); got != tt.want {
				t.Errorf("TruncateToCells(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}

func TestDrawTextTruncates(t *testing.T) {
	nb := backend.NewNullBackend(20, 2)

	n := drawText(nb, 0, 0, 3, "Alice", backend.Style{})
	if n != 3 {
		t.Errorf("drawText wrote %d cells, want 3", n)
	}
	if got := nb.Row(0)[:5]; got != "Ali  " {
		t.Errorf("row = %q, want %q", got, "Ali  ")
	}
}

func TestDrawTextBlanksWideTail(t *testing.T) {
	nb := backend.NewNullBackend(20, 1)

	drawText(nb, 0, 0, 10, "日x", backend.Style{})
	if got := nb.CellAt(0, 0).Rune; got != '日' {
		t.Errorf("cell 0 = %q, want the wide rune", got)
	}
	if got := nb.CellAt(1, 0).Rune; got != ' ' {
		t.Errorf("cell 1 = %q, want the blanked trailing cell", got)
	}
	if got := nb.CellAt(2, 0).Rune; got != 'x' {
		t.Errorf("cell 2 = %q, want %q", got, 'x')
	}
}
