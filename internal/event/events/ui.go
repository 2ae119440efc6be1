package events

import (
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// UI event topics.
const (
	// TopicUIClickObserved is published for every logical click the
	// message filter resolves, regardless of which widget was hit.
	TopicUIClickObserved topic.Topic = "ui.click.observed"

	// TopicUIWindowDisposing is published when a window begins teardown.
	TopicUIWindowDisposing topic.Topic = "ui.window.disposing"
)

// ClickObserved is published once per resolved logical click.
type ClickObserved struct {
	// Handle is the native handle of the widget that was hit.
	Handle uint64

	// Name is the widget's internal name.
	Name string

	// Text is the widget's text, possibly empty.
	Text string

	// Label is the derived display label: text, or name when the text is
	// blank.
	Label string

	// X, Y is the click position in screen cells.
	X, Y int

	// Timestamp is when the native message was observed.
	Timestamp time.Time
}

// WindowDisposing is published when a window begins teardown.
type WindowDisposing struct {
	// Name is the window's internal name.
	Name string
}
