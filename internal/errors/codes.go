package errors

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether an error with this code came from a bad player
// choice. The delve keeps going and the player is asked again; any other
// code ends the delve with an error.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition, CodeOutOfRange:
		return true
	default:
		return false
	}
}
