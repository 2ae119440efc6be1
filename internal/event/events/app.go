package events

import (
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// Application lifecycle topics.
const (
	// TopicAppStarted is published once the main loop is running.
	TopicAppStarted topic.Topic = "app.started"

	// TopicAppStopping is published when shutdown begins.
	TopicAppStopping topic.Topic = "app.stopping"
)

// AppStarted is published once the main loop is running.
type AppStarted struct {
	// Version is the build version string.
	Version string

	// Timestamp is when the loop started.
	Timestamp time.Time
}

// AppStopping is published when shutdown begins.
type AppStopping struct {
	// Reason describes what triggered the shutdown.
	Reason string
}
