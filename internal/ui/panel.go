package ui

// Panel groups widgets behind a filled background. A panel carries no
// text of its own, so anything deriving a display label for it falls
// back to its name.
type Panel struct {
	ContainerBase
}

// NewPanel creates a panel inside parent.
func NewPanel(parent Container, name string) *Panel {
	p := &Panel{}
	initWidget(p, parent, name)
	return p
}

// Paint fills the panel background and paints its children on top.
func (p *Panel) Paint(c Canvas) {
	c.Fill(p.bounds.X, p.bounds.Y, p.bounds.Width, p.bounds.Height, ' ', p.style)
	p.PaintChildren(c)
}
