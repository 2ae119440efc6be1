// Package backend abstracts the terminal so the widget toolkit never
// touches tcell directly. Terminal is the real implementation; NullBackend
// is an in-memory screen for tests and headless runs.
package backend
