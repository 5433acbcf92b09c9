package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrAlreadyApproved    = errors.New("account already approved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownField       = errors.New("unknown field")
	ErrChildIndex         = errors.New("child index out of range")
	ErrDraftBusy          = errors.New("registration is already being submitted")
	ErrDraftConflict      = errors.New("registration was changed by another request")
)

// User-facing messages returned with validation and gateway failures.
const (
	MsgRequiredFields    = "Please fill out all required fields."
	MsgCompleteAllFields = "Please complete all fields."
	MsgAgeNotNumber      = "Age must be a number."
	MsgUnavailableTime   = "Please choose an available time."
	MsgEventUnavailable  = "Selected event is no longer available."
	MsgSubmitFailed      = "There was an error submitting the form. Please try again."
)

// ValidationError is a recoverable input problem. Message is safe to show to the user.
type ValidationError struct {
	Message string
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrInvalidInput) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// GatewayError wraps a storage or auth backend failure. Message is user-facing,
// Err carries the cause for logs.
type GatewayError struct {
	Op      string
	Message string
	Err     error
}

// NewGatewayError returns a GatewayError for op wrapping err.
func NewGatewayError(op, message string, err error) *GatewayError {
	return &GatewayError{Op: op, Message: message, Err: err}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
