// Package topic defines hierarchical event topics in dot notation and
// glob-style pattern matching for subscriptions.
//
// Topics are dotted paths such as "ui.click.observed" or "config.reloaded".
// Patterns may use "*" to match exactly one segment and "**" to match any
// remaining tail:
//
//	ui.*            matches ui.click (not ui.click.observed)
//	ui.**           matches ui.click, ui.click.observed, ui.a.b.c
//	*.reloaded      matches config.reloaded, theme.reloaded
//	**              matches everything
package topic
