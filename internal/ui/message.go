package ui

import (
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
)

// Kind classifies a toolkit message.
type Kind int

const (
	KindNone Kind = iota
	KindPrimaryButtonDown
	KindPrimaryButtonUp
	KindSecondaryButtonDown
	KindSecondaryButtonUp
	KindMiddleButtonDown
	KindMiddleButtonUp
	KindMouseMove
	KindWheel
	KindKeyDown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPrimaryButtonDown:
		return "primary-down"
	case KindPrimaryButtonUp:
		return "primary-up"
	case KindSecondaryButtonDown:
		return "secondary-down"
	case KindSecondaryButtonUp:
		return "secondary-up"
	case KindMiddleButtonDown:
		return "middle-down"
	case KindMiddleButtonUp:
		return "middle-up"
	case KindMouseMove:
		return "mouse-move"
	case KindWheel:
		return "wheel"
	case KindKeyDown:
		return "key-down"
	default:
		return "unknown"
	}
}

// IsPress reports whether k is a button-press kind.
func (k Kind) IsPress() bool {
	switch k {
	case KindPrimaryButtonDown, KindSecondaryButtonDown, KindMiddleButtonDown:
		return true
	}
	return false
}

// Message is one unit of input travelling through the dispatch chain.
// Target carries the handle of the widget the message is addressed
// to; Pos is in absolute screen cells. The key fields are only
// meaningful for KindKeyDown, Delta only for KindWheel.
type Message struct {
	Kind   Kind
	Target Handle
	Pos    Point
	Key    backend.Key
	Rune   rune
	Mod    backend.ModMask
	Delta  int
	Time   time.Time
}

// MouseMessageKind maps a backend mouse button and action to the
// message kind the toolkit dispatches for it. It returns KindNone for
// combinations that carry no message, such as wheel buttons paired
// with press actions.
func MouseMessageKind(btn backend.MouseButton, action backend.MouseAction) Kind {
	switch action {
	case backend.MouseMove:
		return KindMouseMove
	case backend.MouseWheel:
		return KindWheel
	case backend.MousePress:
		switch btn {
		case backend.ButtonPrimary:
			return KindPrimaryButtonDown
		case backend.ButtonSecondary:
			return KindSecondaryButtonDown
		case backend.ButtonMiddle:
			return KindMiddleButtonDown
		}
	case backend.MouseRelease:
		switch btn {
		case backend.ButtonPrimary:
			return KindPrimaryButtonUp
		case backend.ButtonSecondary:
			return KindSecondaryButtonUp
		case backend.ButtonMiddle:
			return KindMiddleButtonUp
		}
	}
	return KindNone
}
