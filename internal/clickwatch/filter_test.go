package clickwatch

import (
	"testing"
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// newTestForm builds the form the scenarios run against: a window
// holding a people panel with a populated name label and an empty age
// label, plus a quit button outside the panel.
func newTestForm(t *testing.T) (*ui.Window, *ui.Panel, *ui.Label, *ui.Label, *ui.Button) {
	t.Helper()

	loop := ui.NewLoop()
	win := ui.NewWindow(loop, "main", "Slow Flow")
	win.SetBounds(ui.Rect{X: 0, Y: 0, Width: 60, Height: 20})

	pnl := ui.NewPanel(win, "pnlPeople")
	pnl.SetBounds(ui.Rect{X: 2, Y: 2, Width: 40, Height: 10})

	name := ui.NewLabel(pnl, "lblName1", "Alice")
	name.SetBounds(ui.Rect{X: 4, Y: 3, Width: 12, Height: 1})

	age := ui.NewLabel(pnl, "lblAge3", "")
	age.SetBounds(ui.Rect{X: 20, Y: 5, Width: 6, Height: 1})

	btn := ui.NewButton(win, "btnQuit", "Quit")
	btn.SetBounds(ui.Rect{X: 2, Y: 15, Width: 10, Height: 1})

	t.Cleanup(win.Dispose)
	return win, pnl, name, age, btn
}

// collectClicks subscribes to the window's logical click event and
// returns the slice the subscriber appends to.
func collectClicks(win *ui.Window) *[]ui.ClickInfo {
	var got []ui.ClickInfo
	win.ClickObserved().Attach(func(ci ui.ClickInfo) { got = append(got, ci) })
	return &got
}

// pressAt hit-tests p and dispatches a primary press addressed to the
// resolved widget, the way the application's event loop does.
func pressAt(win *ui.Window, p ui.Point) bool {
	m := &ui.Message{Kind: ui.KindPrimaryButtonDown, Pos: p, Time: time.Now()}
	if target := win.WidgetAt(p); target != nil {
		m.Target = target.Handle()
	}
	return win.Loop().Dispatch(m)
}

func TestPressSchedulesExactlyOneClick(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	consumed := pressAt(win, ui.Point{X: 5, Y: 3})
	if consumed {
		t.Error("press was consumed; the observer must never consume")
	}
	if len(*got) != 0 {
		t.Fatal("click delivered synchronously; delivery must be deferred to the loop")
	}

	win.Loop().RunPending()
	if len(*got) != 1 {
		t.Fatalf("subscriber saw %d clicks, want 1", len(*got))
	}
	if (*got)[0].Target != ui.Widget(name) {
		t.Errorf("click target = %q, want %q", (*got)[0].Target.Name(), name.Name())
	}
}

func TestNonPressMessagesProduceNothing(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	kinds := []ui.Kind{
		ui.KindNone,
		ui.KindPrimaryButtonUp,
		ui.KindSecondaryButtonDown,
		ui.KindSecondaryButtonUp,
		ui.KindMiddleButtonDown,
		ui.KindMouseMove,
		ui.KindWheel,
		ui.KindKeyDown,
	}
	for _, k := range kinds {
		win.Loop().Dispatch(&ui.Message{Kind: k, Target: name.Handle(), Pos: ui.Point{X: 5, Y: 3}})
	}

	if pending := win.Loop().Pending(); pending != 0 {
		t.Errorf("%d tasks scheduled for non-press messages, want 0", pending)
	}
	win.Loop().RunPending()
	if len(*got) != 0 {
		t.Errorf("subscriber saw %d clicks for non-press messages, want 0", len(*got))
	}
}

func TestFilterMessageNeverConsumes(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)

	msgs := []ui.Message{
		{Kind: ui.KindPrimaryButtonDown, Target: name.Handle()},
		{Kind: ui.KindPrimaryButtonDown, Target: ui.InvalidHandle},
		{Kind: ui.KindPrimaryButtonUp, Target: name.Handle()},
		{Kind: ui.KindKeyDown, Target: win.Handle()},
	}
	for _, m := range msgs {
		m := m
		if f.FilterMessage(&m) {
			t.Errorf("FilterMessage(%v) = true, want false", m.Kind)
		}
	}
}

func TestStaleHandleDroppedSilently(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	stale := name.Handle()
	name.Dispose()

	consumed := win.Loop().Dispatch(&ui.Message{Kind: ui.KindPrimaryButtonDown, Target: stale})
	if consumed {
		t.Error("stale press was consumed")
	}
	if pending := win.Loop().Pending(); pending != 0 {
		t.Errorf("%d tasks scheduled for a stale handle, want 0", pending)
	}
	win.Loop().RunPending()
	if len(*got) != 0 {
		t.Errorf("subscriber saw %d clicks for a stale handle, want 0", len(*got))
	}
}

func TestObserverSeesPressConsumedDownstream(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	// A consuming filter behind the observer suppresses routing but
	// not observation.
	win.Loop().Filters().Install(ui.FilterFunc(func(m *ui.Message) bool {
		return m.Kind == ui.KindPrimaryButtonDown
	}), ui.FilterNormal)

	consumed := win.Loop().Dispatch(&ui.Message{Kind: ui.KindPrimaryButtonDown, Target: name.Handle()})
	if !consumed {
		t.Fatal("downstream filter did not consume the press")
	}

	win.Loop().RunPending()
	if len(*got) != 1 {
		t.Errorf("subscriber saw %d clicks, want 1 even when the press was consumed downstream", len(*got))
	}
}

func TestDefaultRoutingStillRuns(t *testing.T) {
	win, _, _, _, btn := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	clicks := 0
	btn.Clicked().Attach(func() { clicks++ })

	pressAt(win, ui.Point{X: 4, Y: 15})
	if clicks != 1 {
		t.Errorf("button saw %d activations, want 1; the observer must not block routing", clicks)
	}

	win.Loop().RunPending()
	if len(*got) != 1 {
		t.Errorf("subscriber saw %d clicks, want 1", len(*got))
	}
	if (*got)[0].Target != ui.Widget(btn) {
		t.Errorf("click target = %q, want %q", (*got)[0].Target.Name(), btn.Name())
	}
}

func TestTargetFromHandleNotFocus(t *testing.T) {
	win, _, name, _, btn := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	win.SetFocus(btn)
	pressAt(win, ui.Point{X: 5, Y: 3})
	win.Loop().RunPending()

	if len(*got) != 1 {
		t.Fatalf("subscriber saw %d clicks, want 1", len(*got))
	}
	if (*got)[0].Target != ui.Widget(name) {
		t.Errorf("click target = %q while %q had focus, want the pressed %q",
			(*got)[0].Target.Name(), btn.Name(), name.Name())
	}
}

func TestRegisterTwiceIsNoOp(t *testing.T) {
	win, _, _, _, _ := newTestForm(t)
	f := New()

	before := win.Loop().Filters().Len()
	f.Register(win)
	f.Register(win)

	if got := win.Loop().Filters().Len(); got != before+1 {
		t.Errorf("filter chain grew to %d entries, want %d", got, before+1)
	}

	got := collectClicks(win)
	pressAt(win, ui.Point{X: 5, Y: 3})
	win.Loop().RunPending()
	if len(*got) != 1 {
		t.Errorf("subscriber saw %d clicks after double registration, want 1", len(*got))
	}
}

func TestRegisterNilHost(t *testing.T) {
	f := New()
	f.Register(nil)
	if f.Registered() {
		t.Error("Register(nil) left the filter registered")
	}
}

func TestUnregisterWithoutRegister(t *testing.T) {
	f := New()
	f.Unregister()
	if f.State() != StateUnregistered {
		t.Errorf("State() = %v, want %v", f.State(), StateUnregistered)
	}
}

func TestUnregisterStopsObservation(t *testing.T) {
	win, _, _, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	f.Unregister()
	f.Unregister()

	pressAt(win, ui.Point{X: 5, Y: 3})
	win.Loop().RunPending()
	if len(*got) != 0 {
		t.Errorf("subscriber saw %d clicks after Unregister, want 0", len(*got))
	}
	if got := win.Loop().Filters().Len(); got != 0 {
		t.Errorf("filter chain has %d entries after Unregister, want 0", got)
	}
}

func TestReRegisterRestoresObservation(t *testing.T) {
	win, _, _, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	f.Unregister()
	f.Register(win)
	got := collectClicks(win)

	pressAt(win, ui.Point{X: 5, Y: 3})
	win.Loop().RunPending()
	if len(*got) != 1 {
		t.Errorf("subscriber saw %d clicks after re-registration, want 1", len(*got))
	}
}

func TestHostDisposalUnregisters(t *testing.T) {
	loop := ui.NewLoop()
	win := ui.NewWindow(loop, "main", "Test")
	f := New()
	f.Register(win)

	win.Dispose()
	if f.Registered() {
		t.Error("filter still registered after host window disposal")
	}
}

func TestSubscriberPanicPropagates(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)

	win.ClickObserved().Attach(func(ui.ClickInfo) {
		panic("subscriber exploded")
	})

	// Observation itself must not panic...
	win.Loop().Dispatch(&ui.Message{Kind: ui.KindPrimaryButtonDown, Target: name.Handle()})

	// ...the panic surfaces where the scheduled work runs.
	defer func() {
		if r := recover(); r == nil {
			t.Error("subscriber panic was swallowed instead of propagating out of the loop")
		}
	}()
	win.Loop().RunPending()
}

func TestClickInfoCarriesPosAndTime(t *testing.T) {
	win, _, name, _, _ := newTestForm(t)
	f := New()
	f.Register(win)
	got := collectClicks(win)

	stamp := time.Unix(1700000000, 0)
	win.Loop().Dispatch(&ui.Message{
		Kind:   ui.KindPrimaryButtonDown,
		Target: name.Handle(),
		Pos:    ui.Point{X: 5, Y: 3},
		Time:   stamp,
	})
	win.Loop().RunPending()

	if len(*got) != 1 {
		t.Fatalf("subscriber saw %d clicks, want 1", len(*got))
	}
	ci := (*got)[0]
	if ci.Pos != (ui.Point{X: 5, Y: 3}) {
		t.Errorf("click pos = %v, want (5,3)", ci.Pos)
	}
	if !ci.Time.Equal(stamp) {
		t.Errorf("click time = %v, want %v", ci.Time, stamp)
	}
}

func TestStateTransitions(t *testing.T) {
	win, _, _, _, _ := newTestForm(t)
	f := New()

	if f.State() != StateUnregistered {
		t.Fatalf("initial state = %v, want %v", f.State(), StateUnregistered)
	}
	f.Register(win)
	if f.State() != StateRegistered {
		t.Fatalf("state after Register = %v, want %v", f.State(), StateRegistered)
	}
	f.Unregister()
	if f.State() != StateUnregistered {
		t.Fatalf("state after Unregister = %v, want %v", f.State(), StateUnregistered)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUnregistered, "unregistered"},
		{StateRegistered, "registered"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
