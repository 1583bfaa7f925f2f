package broadcast

import "errors"

var (
	// ErrAudienceResolution means the recipient set could not be fetched.
	// The send is aborted: targeting an unknown audience is unsafe.
	ErrAudienceResolution = errors.New("audience resolution failed")
	// ErrNotFound means the audit record does not exist.
	ErrNotFound = errors.New("broadcast not found")
)
