package backend

import "testing"

func TestNullBackendSetCell(t *testing.T) {
	b := NewNullBackend(10, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	style := Style{FG: NewColor(255, 255, 255), Bold: true}
	b.SetCell(2, 1, 'A', style)

	got := b.CellAt(2, 1)
	if got.Rune != 'A' {
		t.Errorf("CellAt(2,1).Rune = %q, want %q", got.Rune, 'A')
	}
	if !got.Style.Bold {
		t.Errorf("CellAt(2,1).Style.Bold = false, want true")
	}

	// Out-of-range writes are ignored.
	b.SetCell(-1, 0, 'X', style)
	b.SetCell(10, 0, 'X', style)
	b.SetCell(0, 4, 'X', style)
	if got := b.CellAt(0, 0); got.Rune != 0 {
		t.Errorf("CellAt(0,0).Rune = %q, want unset", got.Rune)
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(8, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	b.Fill(1, 1, 3, 2, '#', Style{})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"inside top-left", 1, 1, '#'},
		{"inside bottom-right", 3, 2, '#'},
		{"outside left", 0, 1, 0},
		{"outside right", 4, 1, 0},
		{"outside below", 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CellAt(tt.x, tt.y).Rune; got != tt.want {
				t.Errorf("CellAt(%d,%d).Rune = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(6, 2)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	for i, r := range "abc" {
		b.SetCell(1+i, 0, r, Style{})
	}

	if got, want := b.Row(0), " abc  "; got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("Row(5) = %q, want empty", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 10)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	b.PostEvent(Event{Type: EventMouse, X: 3, Y: 4, Button: ButtonPrimary, Action: MousePress})
	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})

	first := b.PollEvent()
	if first.Type != EventMouse || first.X != 3 || first.Y != 4 {
		t.Errorf("first event = %+v, want mouse press at (3,4)", first)
	}
	second := b.PollEvent()
	if second.Type != EventKey || second.Rune != 'q' {
		t.Errorf("second event = %+v, want key 'q'", second)
	}
}

func TestNullBackendEventQueueFull(t *testing.T) {
	b := NewNullBackend(10, 10)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Posting past the buffer must not block.
	for i := 0; i < 150; i++ {
		b.PostEvent(Event{Type: EventInterrupt})
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(4, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	b.SetCell(0, 0, 'x', Style{})
	b.Clear()
	if got := b.CellAt(0, 0).Rune; got != 0 {
		t.Errorf("CellAt(0,0).Rune after Clear = %q, want unset", got)
	}
}

func TestColorIsDefault(t *testing.T) {
	var def Color
	if !def.IsDefault() {
		t.Error("zero Color.IsDefault() = false, want true")
	}
	if NewColor(1, 2, 3).IsDefault() {
		t.Error("NewColor(1,2,3).IsDefault() = true, want false")
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) {
		t.Error("Has(ModCtrl) = false, want true")
	}
	if m.Has(ModAlt) {
		t.Error("Has(ModAlt) = true, want false")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"event type mouse", EventMouse.String(), "mouse"},
		{"event type resize", EventResize.String(), "resize"},
		{"button primary", ButtonPrimary.String(), "primary"},
		{"button wheel up", WheelUp.String(), "wheel-up"},
		{"action press", MousePress.String(), "press"},
		{"action move", MouseMove.String(), "move"},
		{"unknown event type", EventType(99).String(), "unknown"},
		{"unknown button", MouseButton(99).String(), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
