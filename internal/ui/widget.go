package ui

import "github.com/IVSoftware/debug-slow-flow/internal/backend"

// Canvas is the surface widgets paint onto. backend implementations
// satisfy it; tests can substitute anything that records cells.
type Canvas interface {
	SetCell(x, y int, ch rune, style backend.Style)
	Fill(x, y, w, h int, ch rune, style backend.Style)
	Size() (width, height int)
}

// Texter is implemented by widgets that carry a user-visible text
// string, such as labels, buttons and window titles.
type Texter interface {
	Text() string
}

// Widget is the common surface of everything in the tree. Concrete
// widgets obtain it by embedding WidgetBase, which also registers the
// widget in the process-wide handle table.
type Widget interface {
	Handle() Handle
	Name() string
	SetName(name string)
	Bounds() Rect
	SetBounds(r Rect)
	Visible() bool
	SetVisible(v bool)
	Parent() Container
	Disposing() *Event
	Dispose()
	Disposed() bool
	Paint(c Canvas)
	HandleMessage(m *Message)

	base() *WidgetBase
}

// Container is a widget that holds children and answers hit-tests.
type Container interface {
	Widget
	Children() []Widget
	WidgetAt(p Point) Widget

	addChild(w Widget)
	removeChild(w Widget)
}

// WidgetBase carries the state every widget shares. It must be
// initialized through the package's widget constructors; a zero
// WidgetBase has no handle and resolves nowhere.
type WidgetBase struct {
	self      Widget
	handle    Handle
	name      string
	bounds    Rect
	style     backend.Style
	parent    Container
	visible   bool
	disposed  bool
	disposing EventPublisher
}

// initWidget wires w into the tree: it allocates the handle, records
// the name, and attaches w to parent when one is given.
func initWidget(w Widget, parent Container, name string) {
	b := w.base()
	b.self = w
	b.name = name
	b.visible = true
	b.handle = newHandle(w)
	if parent != nil {
		b.parent = parent
		parent.addChild(w)
	}
}

func (b *WidgetBase) base() *WidgetBase { return b }

// Handle returns the widget's process-wide handle. After Dispose the
// value is still readable but no longer resolves.
func (b *WidgetBase) Handle() Handle { return b.handle }

// Name returns the widget's internal name.
func (b *WidgetBase) Name() string { return b.name }

// SetName changes the widget's internal name.
func (b *WidgetBase) SetName(name string) { b.name = name }

// Bounds returns the widget's rectangle in absolute screen cells.
func (b *WidgetBase) Bounds() Rect { return b.bounds }

// SetBounds moves and resizes the widget.
func (b *WidgetBase) SetBounds(r Rect) { b.bounds = r }

// Visible reports whether the widget participates in painting and
// hit-testing.
func (b *WidgetBase) Visible() bool { return b.visible }

// SetVisible shows or hides the widget.
func (b *WidgetBase) SetVisible(v bool) { b.visible = v }

// Parent returns the containing widget, or nil for a root window.
func (b *WidgetBase) Parent() Container { return b.parent }

// Style returns the widget's paint style.
func (b *WidgetBase) Style() backend.Style { return b.style }

// SetStyle changes the widget's paint style.
func (b *WidgetBase) SetStyle(s backend.Style) { b.style = s }

// Disposing returns the event that fires at the start of Dispose,
// while the widget's handle still resolves.
func (b *WidgetBase) Disposing() *Event { return b.disposing.Event() }

// Disposed reports whether Dispose has run.
func (b *WidgetBase) Disposed() bool { return b.disposed }

// Dispose detaches the widget from its parent and releases its
// handle. Disposing twice is a no-op. The Disposing event fires
// first, so handlers can still resolve the widget's handle.
func (b *WidgetBase) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.disposing.Publish()
	if b.parent != nil {
		b.parent.removeChild(b.self)
		b.parent = nil
	}
	releaseHandle(b.handle)
}

// Paint draws nothing. Concrete widgets override it.
func (b *WidgetBase) Paint(c Canvas) {}

// HandleMessage ignores the message. Concrete widgets override it.
func (b *WidgetBase) HandleMessage(m *Message) {}

// ContainerBase extends WidgetBase with a child list, deepest-first
// hit-testing and recursive disposal.
type ContainerBase struct {
	WidgetBase
	children []Widget
}

// Children returns a copy of the child list in add order.
func (cb *ContainerBase) Children() []Widget {
	out := make([]Widget, len(cb.children))
	copy(out, cb.children)
	return out
}

func (cb *ContainerBase) addChild(w Widget) {
	cb.children = append(cb.children, w)
}

func (cb *ContainerBase) removeChild(w Widget) {
	for i, c := range cb.children {
		if c == w {
			cb.children = append(cb.children[:i], cb.children[i+1:]...)
			return
		}
	}
}

// WidgetAt returns the deepest visible widget containing p. Children
// painted later sit on top, so the search walks the child list in
// reverse add order. A point inside the container but over none of
// its children yields the container itself; a point outside yields
// nil.
func (cb *ContainerBase) WidgetAt(p Point) Widget {
	if cb.disposed || !cb.visible || !cb.bounds.Contains(p) {
		return nil
	}
	for i := len(cb.children) - 1; i >= 0; i-- {
		child := cb.children[i]
		if child.Disposed() || !child.Visible() {
			continue
		}
		if c, ok := child.(Container); ok {
			if hit := c.WidgetAt(p); hit != nil {
				return hit
			}
			continue
		}
		if child.Bounds().Contains(p) {
			return child
		}
	}
	return cb.self
}

// Dispose disposes every child before the container itself.
func (cb *ContainerBase) Dispose() {
	if cb.disposed {
		return
	}
	for _, child := range cb.Children() {
		child.Dispose()
	}
	cb.WidgetBase.Dispose()
}

// PaintChildren paints every visible child in add order.
func (cb *ContainerBase) PaintChildren(c Canvas) {
	for _, child := range cb.children {
		if child.Visible() && !child.Disposed() {
			child.Paint(c)
		}
	}
}
