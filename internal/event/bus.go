package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// Bus is a synchronous publish/subscribe bus over hierarchical topics.
// The zero value is not usable; create one with New.
type Bus struct {
	mu sync.RWMutex

	// subs is kept sorted by priority, highest first; attach order is
	// preserved within a priority.
	subs []*subscription

	closed atomic.Bool

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a topic or pattern. The returned
// Subscription controls delivery; Unsubscribe with its ID removes it.
func (b *Bus) Subscribe(pattern topic.Topic, h Handler, opts ...SubscribeOption) (Subscription, error) {
	if b.closed.Load() {
		return nil, ErrBusClosed
	}
	if h == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	sub := &subscription{
		id:       uuid.NewString(),
		pattern:  pattern,
		handler:  h,
		priority: PriorityNormal,
	}
	for _, opt := range opts {
		opt(sub)
	}

	b.mu.Lock()
	b.insert(sub)
	b.mu.Unlock()

	return sub, nil
}

// insert places the subscription after all existing entries of greater or
// equal priority. Callers hold b.mu.
func (b *Bus) insert(sub *subscription) {
	pos := len(b.subs)
	for i, existing := range b.subs {
		if existing.priority < sub.priority {
			pos = i
			break
		}
	}
	b.subs = append(b.subs, nil)
	copy(b.subs[pos+1:], b.subs[pos:])
	b.subs[pos] = sub
}

// Unsubscribe cancels and removes the subscription with the given id.
func (b *Bus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			sub.Cancel()
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers the payload to every matching active subscription, in
// priority order, on the caller's goroutine. Handler errors are collected
// and returned joined; delivery continues past them. Handler panics are not
// recovered.
func (b *Bus) Publish(ctx context.Context, t topic.Topic, payload any) error {
	if b.closed.Load() {
		return ErrBusClosed
	}
	if !t.IsValid() || t.IsPattern() {
		return ErrInvalidTopic
	}

	env := Envelope{
		ID:        uuid.NewString(),
		Topic:     t,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	b.published.Add(1)

	// Snapshot matching subscriptions so handlers may subscribe or
	// unsubscribe while delivery runs.
	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.wants(env) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, sub := range matched {
		// State may have changed since the snapshot.
		if !sub.IsActive() {
			continue
		}
		err := sub.handler(ctx, env)
		b.delivered.Add(1)
		if err != nil {
			b.handlerErrors.Add(1)
			errs = append(errs, &HandlerError{Topic: t, SubscriptionID: sub.id, Err: err})
		}
		if sub.once {
			sub.Cancel()
		}
	}

	b.sweep()
	return errors.Join(errs...)
}

// sweep drops cancelled subscriptions.
func (b *Bus) sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subs[:0]
	for _, sub := range b.subs {
		if sub.State() != SubCancelled {
			kept = append(kept, sub)
		}
	}
	b.subs = kept
}

// Stop closes the bus: all subscriptions are cancelled and further
// operations fail with ErrBusClosed. Idempotent.
func (b *Bus) Stop() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		sub.Cancel()
	}
	b.subs = nil
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	count := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerErrors: b.handlerErrors.Load(),
		Subscriptions: count,
	}
}
