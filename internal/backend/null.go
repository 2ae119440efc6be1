package backend

// NullBackend is an in-memory backend for tests and headless runs. Drawing
// is recorded in a cell grid that tests can inspect; input is whatever the
// test posts via PostEvent.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	mouseEnabled  bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
// The cell grid is usable immediately; Init merely resets it.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		cells:  makeCells(width, height),
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.cells = makeCells(b.width, b.height)
	return nil
}

// Shutdown wakes any goroutine blocked in PollEvent with an EventNone,
// mirroring a real terminal where Fini makes PollEvent return nil.
func (b *NullBackend) Shutdown() {
	select {
	case b.events <- Event{Type: EventNone}:
	default:
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, ch rune, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = Cell{Rune: ch, Style: style}
}

func (b *NullBackend) Fill(x, y, w, h int, ch rune, style Style) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			b.SetCell(cx, cy, ch, style)
		}
	}
}

func (b *NullBackend) Clear() {
	b.cells = makeCells(b.width, b.height)
}

func (b *NullBackend) Show() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
		// Queue full; drop rather than block a test.
	}
}

func (b *NullBackend) EnableMouse()  { b.mouseEnabled = true }
func (b *NullBackend) DisableMouse() { b.mouseEnabled = false }

// CellAt returns the recorded cell at the given position for assertions.
func (b *NullBackend) CellAt(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y][x]
}

// Row returns the runes of row y as a string, with unset cells as spaces.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		if c.Rune == 0 {
			runes[x] = ' '
		} else {
			runes[x] = c.Rune
		}
	}
	return string(runes)
}

// MouseEnabled reports whether EnableMouse was called.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouseEnabled
}

func makeCells(w, h int) [][]Cell {
	cells := make([][]Cell, h)
	for i := range cells {
		cells[i] = make([]Cell, w)
	}
	return cells
}
