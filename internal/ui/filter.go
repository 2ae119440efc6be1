package ui

import "sync"

// MessageFilter observes messages before they are routed to their
// target widget. Returning true consumes the message: later filters
// do not see it and default routing is suppressed. Filters that only
// watch must return false.
type MessageFilter interface {
	FilterMessage(m *Message) bool
}

// FilterFunc adapts a plain function to the MessageFilter interface.
type FilterFunc func(m *Message) bool

// FilterMessage calls f(m).
func (f FilterFunc) FilterMessage(m *Message) bool { return f(m) }

// FilterPriority orders filters within a chain. Higher priorities run
// earlier; filters installed with equal priority run in install order.
type FilterPriority int

const (
	FilterLow    FilterPriority = 0
	FilterNormal FilterPriority = 100
	FilterHigh   FilterPriority = 200
	FilterFirst  FilterPriority = 300
)

// FilterID identifies one installed filter within its chain.
type FilterID int

// InvalidFilterID is returned by Install for a nil filter.
const InvalidFilterID FilterID = 0

type filterEntry struct {
	id       FilterID
	priority FilterPriority
	filter   MessageFilter
}

// FilterChain is the ordered set of message filters attached to a
// Loop. Install and Remove may be called from any goroutine, and from
// inside a running filter; Run iterates over a snapshot, so chain
// mutations take effect from the next message onward.
type FilterChain struct {
	mu      sync.RWMutex
	nextID  FilterID
	entries []filterEntry
}

// NewFilterChain returns an empty chain.
func NewFilterChain() *FilterChain {
	return &FilterChain{}
}

// Install adds f at the given priority and returns its id. A nil
// filter is not installed and yields InvalidFilterID.
func (c *FilterChain) Install(f MessageFilter, priority FilterPriority) FilterID {
	if f == nil {
		return InvalidFilterID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	e := filterEntry{id: c.nextID, priority: priority, filter: f}

	// Insert after the last entry with priority >= e.priority so that
	// equal priorities keep install order.
	pos := len(c.entries)
	for i, cur := range c.entries {
		if cur.priority < e.priority {
			pos = i
			break
		}
	}
	c.entries = append(c.entries, filterEntry{})
	copy(c.entries[pos+1:], c.entries[pos:])
	c.entries[pos] = e
	return e.id
}

// Remove uninstalls the filter identified by id. It reports whether a
// filter was actually removed, so removing twice is harmless.
func (c *FilterChain) Remove(id FilterID) bool {
	if id == InvalidFilterID {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Run offers m to every installed filter in priority order and
// reports whether one of them consumed it. The chain is snapshotted
// first, so filters may install or remove filters while running.
func (c *FilterChain) Run(m *Message) bool {
	c.mu.RLock()
	snapshot := make([]filterEntry, len(c.entries))
	copy(snapshot, c.entries)
	c.mu.RUnlock()

	for _, e := range snapshot {
		if e.filter.FilterMessage(m) {
			return true
		}
	}
	return false
}

// Len reports how many filters are installed.
func (c *FilterChain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
