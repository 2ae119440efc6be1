package clickwatch

import (
	"sync/atomic"
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// State is the filter's registration state.
type State int32

const (
	// StateUnregistered means the filter is not attached to any
	// window and observes nothing.
	StateUnregistered State = iota
	// StateRegistered means the filter is installed in its host
	// window's filter chain.
	StateRegistered
)

func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "unregistered"
	case StateRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

// Filter observes primary button presses for one host window. The
// zero value is usable; Register attaches it, Unregister detaches it.
// Register and Unregister must run on the host's loop goroutine or
// before the loop starts; the state word is atomic so that a stray
// duplicate call from a teardown path stays harmless.
type Filter struct {
	state     atomic.Int32
	host      *ui.Window
	filterID  ui.FilterID
	disposing int
}

// New returns an unregistered filter.
func New() *Filter {
	return &Filter{}
}

// State returns the current registration state.
func (f *Filter) State() State {
	return State(f.state.Load())
}

// Registered reports whether the filter is attached to a window.
func (f *Filter) Registered() bool {
	return f.State() == StateRegistered
}

// Register attaches the filter to host's input dispatch chain. It
// installs at the chain's front so the observer sees presses even
// when a later filter consumes them, and it hooks the host's
// Disposing event so teardown always detaches the filter.
//
// Registering an already-registered filter, or registering with a
// nil host, is a no-op.
func (f *Filter) Register(host *ui.Window) {
	if host == nil {
		return
	}
	if !f.state.CompareAndSwap(int32(StateUnregistered), int32(StateRegistered)) {
		return
	}
	f.host = host
	f.filterID = host.Loop().Filters().Install(f, ui.FilterFirst)
	f.disposing = host.Disposing().Attach(f.Unregister)
}

// Unregister detaches the filter from its host. Unregistering an
// already-unregistered filter is a no-op, so teardown paths can call
// it unconditionally. A later Register starts a fresh registration.
func (f *Filter) Unregister() {
	if !f.state.CompareAndSwap(int32(StateRegistered), int32(StateUnregistered)) {
		return
	}
	if f.host != nil {
		f.host.Loop().Filters().Remove(f.filterID)
		f.host.Disposing().Detach(f.disposing)
		f.host = nil
	}
	f.filterID = ui.InvalidFilterID
}

// FilterMessage watches m and always reports it unconsumed, so the
// message continues to later filters and default routing untouched.
//
// For a primary button press it resolves the target widget from the
// message's handle alone. A handle that does not resolve (stale after
// disposal, or never valid) drops the press silently. A live target
// schedules one logical click on the host's loop; nothing is ever
// delivered synchronously from here.
func (f *Filter) FilterMessage(m *ui.Message) bool {
	if f.State() != StateRegistered {
		return false
	}
	if m.Kind != ui.KindPrimaryButtonDown {
		return false
	}

	target, ok := ui.FromHandle(m.Target)
	if !ok {
		return false
	}

	host := f.host
	if host == nil {
		return false
	}

	ci := ui.ClickInfo{Target: target, Pos: m.Pos, Time: m.Time}
	if ci.Time.IsZero() {
		ci.Time = time.Now()
	}
	host.Loop().PostTask(func() {
		host.PublishClickObserved(ci)
	})
	return false
}
