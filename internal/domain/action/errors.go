package action

import "errors"

// Validation error codes.
const (
	CodeEmptyURL   = "EMPTY_URL"
	CodeInvalidURL = "INVALID_URL"
)

// ErrNotAllowed is returned when an operation is not permitted in the
// current state, such as confirming while pending.
var ErrNotAllowed = errors.New("operation not allowed in current state")

// ValidationError describes malformed user input. It is shown inline and
// never logged.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches another ValidationError by code.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Sentinel validation errors for errors.Is.
var (
	ErrEmptyURL   = &ValidationError{Code: CodeEmptyURL, Message: MessageEmptyURL}
	ErrInvalidURL = &ValidationError{Code: CodeInvalidURL, Message: MessageInvalidURL}
)
