package port

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across adapters. Callers discriminate with
// errors.Is; the HTTP layer maps each kind to a distinct response.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned when a debit would drive a user's
	// balance negative. The transaction is rolled back entirely.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientEarnings is returned when a withdrawal exceeds the
	// user's referral earnings.
	ErrInsufficientEarnings = errors.New("insufficient referral earnings")

	// ErrMissingCredentials means the generative model API key is not
	// configured. Callers substitute a fallback result.
	ErrMissingCredentials = errors.New("model credentials not configured")

	// ErrEmptyCompletion means the model returned no usable output.
	ErrEmptyCompletion = errors.New("model returned no output")

	// ErrInvalidCompletion means the model output failed schema validation.
	ErrInvalidCompletion = errors.New("model output failed validation")
)

// FieldError is a field-level validation failure, produced before any
// network or database call.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError aggregates field errors for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Add appends a field error and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Empty reports whether no field errors were collected.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}
