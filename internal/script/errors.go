package script

import "errors"

// Errors returned by script operations.
var (
	// ErrStateClosed indicates the Lua state has been closed.
	ErrStateClosed = errors.New("script state closed")
)
