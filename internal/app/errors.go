package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNotRunning indicates the application is not running.
	ErrNotRunning = errors.New("application not running")

	// ErrNoBackend indicates Run was called without a backend.
	ErrNoBackend = errors.New("no terminal backend set")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// RecoveredPanicError wraps a panic that unwound out of the event
// loop, typically a click subscriber or posted task blowing up. The
// loop's top level is the fault barrier; nothing below it recovers.
type RecoveredPanicError struct {
	Value any
	Stack []byte
}

func (e *RecoveredPanicError) Error() string {
	return fmt.Sprintf("panic in event loop: %v", e.Value)
}
