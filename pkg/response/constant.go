package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500
)
