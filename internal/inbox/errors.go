package inbox

import "errors"

var (
	// ErrCreateFailed means a single per-recipient delivery failed.
	ErrCreateFailed = errors.New("inbox entry creation failed")
	// ErrLoadFailed means a recipient's entry collection could not be fetched.
	ErrLoadFailed = errors.New("inbox load failed")
	// ErrMarkReadFailed means the bulk mark-read operation failed.
	ErrMarkReadFailed = errors.New("inbox mark-read failed")
)
