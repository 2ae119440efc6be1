// Package ui implements the terminal widget toolkit: widget handles,
// geometry, the window/panel/label/button hierarchy, hit-testing, the
// message filter chain, and the serialized task loop that owns all
// widget state.
//
// Widgets are not safe for concurrent use. Every widget mutation and
// every message dispatch must happen on the goroutine that drains the
// owning Loop; other goroutines hand work over with Loop.PostTask. The
// package-level handle table is the only concurrency-safe surface and
// may be queried from any goroutine.
//
// The package deliberately keeps painting primitive: widgets draw
// themselves onto a Canvas in absolute screen coordinates. There is no
// layout engine and no damage tracking; callers repaint the whole
// window per frame.
package ui
