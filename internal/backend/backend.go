package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the application reacts to. Anything else
// arrives as KeyNone.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use the Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
	WheelUp
	WheelDown
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	case WheelUp:
		return "wheel-up"
	case WheelDown:
		return "wheel-down"
	default:
		return "unknown"
	}
}

// MouseAction describes what the mouse did.
type MouseAction int

const (
	MouseMove MouseAction = iota
	MousePress
	MouseRelease
	MouseWheel
)

// String returns the action name.
func (a MouseAction) String() string {
	switch a {
	case MouseMove:
		return "move"
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	X, Y   int
	Button MouseButton
	Action MouseAction

	// Resize event fields
	Width, Height int
}

// Color is a 24-bit color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	RGB     bool // false means terminal default
}

// NewColor returns an RGB color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, RGB: true}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return !c.RGB
}

// Style describes how a cell is drawn.
type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Underline bool
	Reverse   bool
}

// Cell is one screen cell: a rune and its style.
type Cell struct {
	Rune  rune
	Style Style
}

// Backend defines the terminal/display surface the toolkit draws on and
// receives input from.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal state.
	Shutdown()

	// Size returns the current display dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell. Out-of-range positions are ignored.
	SetCell(x, y int, ch rune, style Style)

	// Fill fills a w×h region starting at (x, y) with the given rune and style.
	Fill(x, y, w, h int, ch rune, style Style)

	// Clear clears the whole display to the default style.
	Clear()

	// Show flushes pending drawing to the display.
	Show()

	// PollEvent blocks until the next event is available. After Shutdown
	// it returns an event of type EventNone.
	PollEvent() Event

	// PostEvent injects a synthetic event into the queue.
	PostEvent(ev Event)

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns off mouse reporting.
	DisableMouse()
}
