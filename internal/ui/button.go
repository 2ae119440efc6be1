package ui

import "github.com/IVSoftware/debug-slow-flow/internal/backend"

// Button is a clickable widget. It publishes Clicked on a primary
// button press over it, and on Enter or space when it owns focus.
type Button struct {
	WidgetBase
	text    string
	clicked EventPublisher
}

// NewButton creates a button inside parent.
func NewButton(parent Container, name, text string) *Button {
	b := &Button{text: text}
	initWidget(b, parent, name)
	return b
}

// Text returns the button's caption.
func (b *Button) Text() string { return b.text }

// SetText changes the button's caption.
func (b *Button) SetText(text string) { b.text = text }

// Clicked returns the event that fires when the button is activated.
func (b *Button) Clicked() *Event {
	return b.clicked.Event()
}

// HandleMessage activates the button on a primary press or on
// Enter/space.
func (b *Button) HandleMessage(m *Message) {
	switch {
	case m.Kind == KindPrimaryButtonDown:
		b.clicked.Publish()
	case m.Kind == KindKeyDown && (m.Key == backend.KeyEnter || m.Rune == ' '):
		b.clicked.Publish()
	}
}

// Paint draws the caption bracketed and centered within the bounds.
func (b *Button) Paint(c Canvas) {
	c.Fill(b.bounds.X, b.bounds.Y, b.bounds.Width, b.bounds.Height, ' ', b.style)

	caption := "[ " + b.text + " ]"
	cw := StringWidth(caption)
	x := b.bounds.X
	if cw < b.bounds.Width {
		x += (b.bounds.Width - cw) / 2
	}
	drawText(c, x, b.bounds.Y, b.bounds.Width-(x-b.bounds.X), caption, b.style)
}
