package directory

import "errors"

var (
	// ErrUnavailable means the recipient collection could not be fetched.
	// Sending to an unknown audience is unsafe, so this blocks a send.
	ErrUnavailable = errors.New("recipient directory unavailable")
)
