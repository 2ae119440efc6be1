package event

import (
	"context"
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// Priority orders delivery among subscribers of one topic. Higher
// priorities receive events first.
type Priority int

const (
	PriorityLow      Priority = 0
	PriorityNormal   Priority = 100
	PriorityHigh     Priority = 200
	PriorityCritical Priority = 300
)

// Envelope wraps a published payload with delivery metadata.
type Envelope struct {
	// ID uniquely identifies this publication.
	ID string

	// Topic is the concrete topic the payload was published under.
	Topic topic.Topic

	// Timestamp is when Publish was called.
	Timestamp time.Time

	// Payload is the typed event value.
	Payload any
}

// Handler consumes delivered envelopes.
type Handler func(ctx context.Context, env Envelope) error

// Filter decides whether a subscription wants a particular envelope.
type Filter func(env Envelope) bool

// Stats is a snapshot of bus counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	Subscriptions int
}
