package docrequest

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers unknown request ids and unknown release tokens.
	ErrNotFound = errors.New("document request not found")

	// ErrStateConflict marks a transition attempted from the wrong state,
	// including a second release scan. Handlers map it to 409 so clients can
	// show "already processed" instead of "bad input".
	ErrStateConflict = errors.New("document request is not in the required state")
)

// ValidationError reports a per-field input problem at creation time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
