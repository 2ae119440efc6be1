// Package event provides the application event bus: synchronous, ordered
// publish/subscribe over hierarchical topics.
//
// Delivery runs on the publisher's goroutine in priority order (higher
// priority subscribers first, attach order within a priority). Handler
// errors are collected and returned from Publish; handler panics are not
// recovered here and unwind to the caller, which in this application is the
// UI loop's top-level fault handling.
package event
