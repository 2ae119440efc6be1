package ui

import "time"

// EventHandler is an argument-free event callback.
type EventHandler func()

// Event is an attach point for handlers. The zero value is ready to
// use. Detached slots are reused by later Attach calls, so a handle
// returned by Attach is only valid until Detach is called with it.
type Event struct {
	handlers []EventHandler
}

// Attach adds handler to the event and returns a handle for Detach.
func (e *Event) Attach(handler EventHandler) int {
	for i, h := range e.handlers {
		if h == nil {
			e.handlers[i] = handler
			return i
		}
	}
	e.handlers = append(e.handlers, handler)
	return len(e.handlers) - 1
}

// Detach removes the handler identified by handle. Detaching an
// already-detached handle is a no-op.
func (e *Event) Detach(handle int) {
	if handle < 0 || handle >= len(e.handlers) {
		return
	}
	e.handlers[handle] = nil
}

// Once attaches handler so that it is detached again after its first
// invocation.
func (e *Event) Once(handler EventHandler) {
	var h int
	h = e.Attach(func() {
		e.Detach(h)
		handler()
	})
}

// EventPublisher owns an Event and fires it. Embed one per event a
// widget exposes and hand out the Event via an accessor.
type EventPublisher struct {
	event Event
}

// Event returns the attach surface for this publisher.
func (p *EventPublisher) Event() *Event {
	return &p.event
}

// Publish invokes every attached handler in attach order. Handler
// panics are not recovered here; they unwind into whatever is
// draining the loop.
func (p *EventPublisher) Publish() {
	for _, h := range p.event.handlers {
		if h != nil {
			h()
		}
	}
}

// ClickInfo describes one logical click delivered to subscribers.
// Target is the widget resolved from the originating native event at
// observation time, never the focus owner.
type ClickInfo struct {
	Target Widget
	Pos    Point
	Time   time.Time
}

// ClickEventHandler consumes one logical click.
type ClickEventHandler func(ci ClickInfo)

// ClickEvent is the attach surface for logical click subscribers.
type ClickEvent struct {
	handlers []ClickEventHandler
}

// Attach adds handler and returns a handle for Detach.
func (e *ClickEvent) Attach(handler ClickEventHandler) int {
	for i, h := range e.handlers {
		if h == nil {
			e.handlers[i] = handler
			return i
		}
	}
	e.handlers = append(e.handlers, handler)
	return len(e.handlers) - 1
}

// Detach removes the handler identified by handle.
func (e *ClickEvent) Detach(handle int) {
	if handle < 0 || handle >= len(e.handlers) {
		return
	}
	e.handlers[handle] = nil
}

// ClickEventPublisher owns a ClickEvent and fires it.
type ClickEventPublisher struct {
	event ClickEvent
}

// Event returns the attach surface for this publisher.
func (p *ClickEventPublisher) Event() *ClickEvent {
	return &p.event
}

// Publish invokes every attached handler in attach order with ci.
// Handler panics are not recovered.
func (p *ClickEventPublisher) Publish(ci ClickInfo) {
	for _, h := range p.event.handlers {
		if h != nil {
			h(ci)
		}
	}
}
