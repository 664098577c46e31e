package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredential is returned for both an unknown username and a wrong
// password so a caller cannot probe which accounts exist.
var ErrInvalidCredential = errors.New("invalid username or password")

// ErrBanned is returned when credentials verify but the account is banned.
var ErrBanned = errors.New("account banned")

// ValidationError reports malformed or out-of-range input. The message
// describes the violated constraint and is safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
