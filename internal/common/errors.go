// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Authentication errors.
	ErrUnauthorized = errors.New("not authenticated")
	ErrNoIdentity   = errors.New("no stored identity")

	// API errors.
	ErrServerUnreachable = errors.New("server unreachable")
	ErrMalformedResponse = errors.New("malformed server response")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GenericTransportMessage is shown when the server cannot be reached or
// returns something we cannot interpret.
const GenericTransportMessage = "Could not reach the server. Please try again."

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the message suitable for display. Errors that do not
// carry a UserError collapse to the generic transport fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	if errors.Is(err, ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	return GenericTransportMessage
}
