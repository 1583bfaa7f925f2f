package response

const (
	// MessageSuccess is the message returned on successful requests.
	MessageSuccess = "Success"
	// DefaultErrorMessage is the message returned for unexpected errors.
	DefaultErrorMessage = "Something went wrong"

	// ValidationErrorCode is the error code for validation failures.
	ValidationErrorCode = 400
	// ValidationErrorMsg is the message for validation failures.
	ValidationErrorMsg = "Validation failed"
	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500
)

const (
	// DateTimeFormat is the display format for timestamps in responses.
	DateTimeFormat = "02/01/2006 15:04:05"
)
