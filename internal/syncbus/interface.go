// Package syncbus carries the cross-session "inbox state changed" signal.
//
// The signal is a single shared version value, not a message queue: the
// only meaningful observation is "it changed since I last looked", so
// rapid successive announces may coalesce and consumers must re-fetch
// rather than expect a payload. A session is never notified of its own
// announce; same-session refreshes are the announcer's responsibility.
package syncbus

import "context"

// Handler reacts to a change announced by another session. It carries no
// payload: the receiver re-fetches whatever state it mirrors.
type Handler func()

// Channel is one session's handle on the shared signal.
type Channel interface {
	// Announce bumps the shared signal so every other session observes a
	// change. At-most-once per change: concurrent announces may coalesce.
	Announce(ctx context.Context) error

	// Subscribe registers a handler invoked on changes announced by other
	// sessions. The returned function unsubscribes; it is idempotent.
	Subscribe(h Handler) (unsubscribe func())
}
