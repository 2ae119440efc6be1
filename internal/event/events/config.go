package events

import (
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
)

// Configuration topics.
const (
	// TopicConfigReloaded is published after a watched configuration or
	// theme file change has been applied.
	TopicConfigReloaded topic.Topic = "config.reloaded"
)

// ConfigReloaded is published after a live reload has been applied.
type ConfigReloaded struct {
	// Path is the file whose change triggered the reload.
	Path string

	// Timestamp is when the reload was applied.
	Timestamp time.Time
}
