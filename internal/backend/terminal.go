package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// buttonBits is the set of tcell mask bits that represent held buttons,
// as opposed to momentary wheel motion.
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3 |
	tcell.Button4 | tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

// Terminal implements Backend on a real terminal using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// tcell reports the currently held button mask on every mouse event;
	// presses and releases are derived from transitions against this.
	lastButtons tcell.ButtonMask
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, ch rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, ch, nil, convertStyle(style))
}

func (t *Terminal) Fill(x, y, w, h int, ch rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ts := convertStyle(style)
	width, height := t.screen.Size()
	for cy := y; cy < y+h && cy < height; cy++ {
		for cx := x; cx < x+w && cx < width; cx++ {
			if cx >= 0 && cy >= 0 {
				t.screen.SetContent(cx, cy, ch, nil, ts)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Fini closed the screen.
			return Event{Type: EventNone}
		}
		out := t.convertEvent(ev)
		if out.Type != EventNone {
			return out
		}
	}
}

func (t *Terminal) PostEvent(ev Event) {
	switch ev.Type {
	case EventKey:
		tev := tcell.NewEventKey(convertToTcellKey(ev.Key, ev.Rune), ev.Rune, convertToTcellMod(ev.Mod))
		_ = t.screen.PostEvent(tev) // best-effort; queue may be full
	case EventMouse:
		tev := tcell.NewEventMouse(ev.X, ev.Y, convertToTcellButtons(ev.Button, ev.Action), convertToTcellMod(ev.Mod))
		_ = t.screen.PostEvent(tev)
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
}

// convertEvent converts a tcell event to a backend Event.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		return t.convertMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// convertMouse derives press/release/wheel/move from button mask transitions.
func (t *Terminal) convertMouse(e *tcell.EventMouse) Event {
	x, y := e.Position()
	btns := e.Buttons()
	mod := convertMod(e.Modifiers())

	t.mu.Lock()
	held := btns & buttonBits
	pressed := held &^ t.lastButtons
	released := t.lastButtons &^ held
	t.lastButtons = held
	t.mu.Unlock()

	out := Event{Type: EventMouse, X: x, Y: y, Mod: mod}

	switch {
	case pressed != 0:
		out.Action = MousePress
		out.Button = convertButton(pressed)
	case released != 0:
		out.Action = MouseRelease
		out.Button = convertButton(released)
	case btns&tcell.WheelUp != 0:
		out.Action = MouseWheel
		out.Button = WheelUp
	case btns&tcell.WheelDown != 0:
		out.Action = MouseWheel
		out.Button = WheelDown
	default:
		out.Action = MouseMove
		out.Button = ButtonNone
	}
	return out
}

// convertButton picks the highest-priority button from a mask.
func convertButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return ButtonPrimary
	case b&tcell.Button2 != 0:
		return ButtonSecondary
	case b&tcell.Button3 != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

// convertToTcellButtons converts a backend button/action pair to a tcell mask.
func convertToTcellButtons(b MouseButton, a MouseAction) tcell.ButtonMask {
	if a == MouseRelease || a == MouseMove {
		return tcell.ButtonNone
	}
	switch b {
	case ButtonPrimary:
		return tcell.Button1
	case ButtonSecondary:
		return tcell.Button2
	case ButtonMiddle:
		return tcell.Button3
	case WheelUp:
		return tcell.WheelUp
	case WheelDown:
		return tcell.WheelDown
	default:
		return tcell.ButtonNone
	}
}

// convertKey maps tcell keys onto the keys the application reacts to.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

// convertToTcellKey maps a backend key back to tcell for synthetic events.
func convertToTcellKey(k Key, r rune) tcell.Key {
	switch k {
	case KeyRune:
		return tcell.KeyRune
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	case KeyHome:
		return tcell.KeyHome
	case KeyEnd:
		return tcell.KeyEnd
	case KeyPageUp:
		return tcell.KeyPgUp
	case KeyPageDown:
		return tcell.KeyPgDn
	case KeyCtrlC:
		return tcell.KeyCtrlC
	default:
		if r != 0 {
			return tcell.KeyRune
		}
		return tcell.KeyNUL
	}
}

// convertStyle converts a backend Style to a tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.FG.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.FG.R), int32(s.FG.G), int32(s.FG.B)))
	}
	if !s.BG.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.BG.R), int32(s.BG.G), int32(s.BG.B)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	return out
}

// convertToTcellMod converts a backend modifier mask to tcell.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	if m&ModShift != 0 {
		out |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		out |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		out |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		out |= tcell.ModMeta
	}
	return out
}
