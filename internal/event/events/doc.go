// Package events defines the topics and payload types published on the
// application bus. Payloads are plain structs; this package depends on
// nothing but the topic type so any component can import it.
package events
