// Package clickwatch implements the click-anywhere observer: a
// message filter that watches the whole input dispatch chain of one
// window, turns every primary button press over a live widget into a
// logical click event, and never interferes with normal message
// routing.
//
// The filter is deliberately passive. It resolves the pressed widget
// strictly from the message's target handle, never from keyboard
// focus; presses whose handle no longer resolves are dropped without
// a trace; and delivery to subscribers is always deferred onto the
// host window's loop, so subscribers observe a settled widget tree
// and may freely mutate it.
package clickwatch
