package ui

// Label is a single line of static text.
type Label struct {
	WidgetBase
	text string
}

// NewLabel creates a label inside parent. The text may be empty; the
// label still occupies its bounds and still hit-tests.
func NewLabel(parent Container, name, text string) *Label {
	l := &Label{text: text}
	initWidget(l, parent, name)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText changes the label's text.
func (l *Label) SetText(text string) { l.text = text }

// Paint clears the label's bounds and draws the text left-aligned on
// the first row.
func (l *Label) Paint(c Canvas) {
	c.Fill(l.bounds.X, l.bounds.Y, l.bounds.Width, l.bounds.Height, ' ', l.style)
	drawText(c, l.bounds.X, l.bounds.Y, l.bounds.Width, l.text, l.style)
}
