package event

import (
	"sync/atomic"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// SubState is the lifecycle state of a subscription.
type SubState int32

const (
	SubActive SubState = iota
	SubPaused
	SubCancelled
)

// String returns the state name.
func (s SubState) String() string {
	switch s {
	case SubActive:
		return "active"
	case SubPaused:
		return "paused"
	case SubCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is a handle to an active bus registration.
type Subscription interface {
	// ID returns the unique subscription id.
	ID() string

	// Pattern returns the topic or pattern subscribed to.
	Pattern() topic.Topic

	// State returns the current lifecycle state.
	State() SubState

	// Pause stops delivery without removing the subscription.
	Pause()

	// Resume re-enables delivery after Pause. Cancelled subscriptions
	// stay cancelled.
	Resume()

	// Cancel permanently stops delivery. Idempotent.
	Cancel()

	// IsActive reports whether the subscription currently receives events.
	IsActive() bool
}

type subscription struct {
	id       string
	pattern  topic.Topic
	handler  Handler
	priority Priority
	once     bool
	filter   Filter

	state atomic.Int32
}

func (s *subscription) ID() string           { return s.id }
func (s *subscription) Pattern() topic.Topic { return s.pattern }

func (s *subscription) State() SubState {
	return SubState(s.state.Load())
}

func (s *subscription) Pause() {
	s.state.CompareAndSwap(int32(SubActive), int32(SubPaused))
}

func (s *subscription) Resume() {
	s.state.CompareAndSwap(int32(SubPaused), int32(SubActive))
}

func (s *subscription) Cancel() {
	s.state.Store(int32(SubCancelled))
}

func (s *subscription) IsActive() bool {
	return s.State() == SubActive
}

// wants reports whether this subscription should receive the envelope.
func (s *subscription) wants(env Envelope) bool {
	if !s.IsActive() {
		return false
	}
	if !env.Topic.Match(s.pattern) {
		return false
	}
	if s.filter != nil && !s.filter(env) {
		return false
	}
	return true
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscription)

// WithPriority sets the delivery priority.
func WithPriority(p Priority) SubscribeOption {
	return func(s *subscription) {
		s.priority = p
	}
}

// WithOnce cancels the subscription automatically after one delivery.
func WithOnce() SubscribeOption {
	return func(s *subscription) {
		s.once = true
	}
}

// WithFilter delivers only envelopes the filter accepts.
func WithFilter(f Filter) SubscribeOption {
	return func(s *subscription) {
		s.filter = f
	}
}
