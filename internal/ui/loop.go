package ui

import "sync"

// Loop serializes all widget work onto a single goroutine. The loop
// owns no goroutine itself: the application's event loop selects on
// WakeChan and calls RunPending, and feeds input through Dispatch.
// PostTask is the one safe way to reach widgets from another
// goroutine.
type Loop struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	filters *FilterChain
}

// NewLoop returns a loop with an empty task queue and filter chain.
func NewLoop() *Loop {
	return &Loop{
		wake:    make(chan struct{}, 1),
		filters: NewFilterChain(),
	}
}

// PostTask queues task to run on the loop goroutine and wakes the
// loop. The queue is unbounded; posting never blocks and never runs
// task synchronously, even when called from the loop goroutine
// itself. Nil tasks are ignored.
func (l *Loop) PostTask(task func()) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()
	l.Wake()
}

// Wake signals the loop goroutine without queueing work. The signal
// is collapsed: waking an already-woken loop is a no-op.
func (l *Loop) Wake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// WakeChan returns the channel the loop goroutine selects on.
func (l *Loop) WakeChan() <-chan struct{} {
	return l.wake
}

// RunPending runs every task queued at the moment of the call, in
// post order, and reports how many ran. Tasks posted while draining
// go into the next batch; the wake signal they raised brings the loop
// back here. Task panics are not recovered.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	batch := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, task := range batch {
		task()
	}
	return len(batch)
}

// Pending reports how many tasks are queued.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Filters returns the loop's message filter chain.
func (l *Loop) Filters() *FilterChain {
	return l.filters
}

// Dispatch offers m to the filter chain and, if no filter consumed
// it, routes it to its target widget's HandleMessage. It reports
// whether a filter consumed the message. A target handle that no
// longer resolves routes nowhere; that is not an error.
func (l *Loop) Dispatch(m *Message) bool {
	if l.filters.Run(m) {
		return true
	}
	if w, ok := FromHandle(m.Target); ok {
		w.HandleMessage(m)
	}
	return false
}
