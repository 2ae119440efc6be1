package ui

// Window is the root of a widget tree. It owns the tree's loop
// reference, tracks keyboard focus, publishes the logical click
// events synthesized by input filters, and can overlay a modal
// message box that grabs all input until dismissed.
type Window struct {
	ContainerBase
	title         string
	loop          *Loop
	focus         Widget
	clickObserved ClickEventPublisher
	modal         *modalBox
}

type modalBox struct {
	title string
	text  string
}

// NewWindow creates a root window bound to loop. The loop is the one
// the window's tree is serialized on; it is injected rather than
// created here so that the application owns loop lifetime.
func NewWindow(loop *Loop, name, title string) *Window {
	w := &Window{loop: loop, title: title}
	initWidget(w, nil, name)
	return w
}

// Loop returns the loop serializing this window's tree.
func (w *Window) Loop() *Loop { return w.loop }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) { w.title = title }

// Text returns the window title, making the title the window's
// display text.
func (w *Window) Text() string { return w.title }

// Focus returns the widget that owns keyboard focus, or nil. A
// disposed focus owner reads as nil.
func (w *Window) Focus() Widget {
	if w.focus != nil && w.focus.Disposed() {
		w.focus = nil
	}
	return w.focus
}

// SetFocus moves keyboard focus to widget, which may be nil to clear
// it. Focus only affects key routing, never how pointer events
// resolve their target.
func (w *Window) SetFocus(widget Widget) {
	w.focus = widget
}

// ClickObserved returns the event that fires once per logical click
// synthesized from a primary button press anywhere in the window.
func (w *Window) ClickObserved() *ClickEvent {
	return w.clickObserved.Event()
}

// PublishClickObserved fires the ClickObserved event. It is intended
// for input filters that synthesize logical clicks; application code
// subscribes via ClickObserved instead.
func (w *Window) PublishClickObserved(ci ClickInfo) {
	w.clickObserved.Publish(ci)
}

// ShowMessage overlays a modal message box with the given title and
// text. Any key or primary button press dismisses it. Showing a
// message while one is up replaces it.
func (w *Window) ShowMessage(title, text string) {
	w.modal = &modalBox{title: title, text: text}
}

// ModalVisible reports whether a message box is up.
func (w *Window) ModalVisible() bool { return w.modal != nil }

// DismissModal removes the message box if one is up.
func (w *Window) DismissModal() { w.modal = nil }

// WidgetAt hit-tests the window's tree. While a message box is up the
// window grabs the whole surface, so every point inside the window
// resolves to the window itself.
func (w *Window) WidgetAt(p Point) Widget {
	if w.modal != nil {
		if !w.disposed && w.visible && w.bounds.Contains(p) {
			return w
		}
		return nil
	}
	return w.ContainerBase.WidgetAt(p)
}

// HandleMessage dismisses a visible message box on any key or primary
// press, and otherwise forwards key messages to the focus owner.
func (w *Window) HandleMessage(m *Message) {
	if w.modal != nil {
		if m.Kind == KindKeyDown || m.Kind == KindPrimaryButtonDown {
			w.DismissModal()
		}
		return
	}
	if m.Kind == KindKeyDown {
		if f := w.Focus(); f != nil && f != Widget(w) {
			f.HandleMessage(m)
		}
	}
}

// Paint fills the window, draws the title bar, paints children in add
// order and finally the modal overlay, so the overlay always sits on
// top.
func (w *Window) Paint(c Canvas) {
	c.Fill(w.bounds.X, w.bounds.Y, w.bounds.Width, w.bounds.Height, ' ', w.style)

	titleStyle := w.style
	titleStyle.Reverse = !titleStyle.Reverse
	c.Fill(w.bounds.X, w.bounds.Y, w.bounds.Width, 1, ' ', titleStyle)
	drawText(c, w.bounds.X+1, w.bounds.Y, w.bounds.Width-2, w.title, titleStyle)

	w.PaintChildren(c)

	if w.modal != nil {
		w.paintModal(c)
	}
}

func (w *Window) paintModal(c Canvas) {
	bw := StringWidth(w.modal.text) + 4
	if tw := StringWidth(w.modal.title) + 4; tw > bw {
		bw = tw
	}
	if bw > w.bounds.Width-2 {
		bw = w.bounds.Width - 2
	}
	if bw < 12 {
		bw = 12
	}
	bh := 4

	bx := w.bounds.X + (w.bounds.Width-bw)/2
	by := w.bounds.Y + (w.bounds.Height-bh)/2
	if bx < w.bounds.X {
		bx = w.bounds.X
	}
	if by < w.bounds.Y {
		by = w.bounds.Y
	}

	st := w.style
	st.Reverse = !st.Reverse
	titleStyle := st
	titleStyle.Bold = true

	c.Fill(bx, by, bw, bh, ' ', st)
	drawText(c, bx+2, by, bw-4, w.modal.title, titleStyle)
	drawText(c, bx+2, by+2, bw-4, w.modal.text, st)
}
