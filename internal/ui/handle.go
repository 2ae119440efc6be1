package ui

import "sync"

// Handle identifies a live widget process-wide. Handles are allocated
// from a monotonically increasing counter and are never reused, so a
// handle held across a widget's disposal goes stale instead of
// aliasing a newer widget.
type Handle uint64

// InvalidHandle is the zero Handle. It never resolves.
const InvalidHandle Handle = 0

var (
	handlesMu sync.RWMutex
	handleSeq Handle
	handleTab = make(map[Handle]Widget)
)

// newHandle registers w in the process-wide table and returns its
// freshly allocated handle.
func newHandle(w Widget) Handle {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	handleSeq++
	h := handleSeq
	handleTab[h] = w
	return h
}

// releaseHandle removes h from the table. Releasing an unknown or
// already-released handle is a no-op.
func releaseHandle(h Handle) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handleTab, h)
}

// FromHandle resolves h to the live widget it identifies. The second
// return is false when h is invalid, was never allocated, or belongs
// to a widget that has since been disposed.
func FromHandle(h Handle) (Widget, bool) {
	handlesMu.RLock()
	defer handlesMu.RUnlock()
	w, ok := handleTab[h]
	return w, ok
}

// liveHandleCount reports how many widgets are currently registered.
func liveHandleCount() int {
	handlesMu.RLock()
	defer handlesMu.RUnlock()
	return len(handleTab)
}
