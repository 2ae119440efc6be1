package event

import (
	"errors"
	"fmt"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// Sentinel errors for bus operations.
var (
	// ErrBusClosed is returned when using a stopped bus.
	ErrBusClosed = errors.New("event bus is closed")

	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrInvalidTopic is returned for malformed topics or for publishing
	// to a pattern.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown id.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// HandlerError wraps an error returned by a subscriber, identifying which
// subscription failed.
type HandlerError struct {
	Topic          topic.Topic
	SubscriptionID string
	Err            error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s on %s: %v", e.SubscriptionID, e.Topic, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
