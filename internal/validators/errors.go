// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrorKind tags a [ValidationError].
type ErrorKind int

const (
	// MissingField means a required field is absent or empty.
	MissingField ErrorKind = iota
	// InvalidField means a field is present but its value is not acceptable.
	InvalidField
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case InvalidField:
		return "InvalidField"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError is a client-caused validation failure. At most one is
// produced per validation pass.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

// Error implements the error interface. It returns the client-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewMissingFieldError builds a [MissingField] error for field.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Kind:    MissingField,
		Field:   field,
		Message: "Missing param: " + field,
	}
}

// NewInvalidFieldError builds an [InvalidField] error for field.
// An empty message defaults to "Invalid param: <field>".
func NewInvalidFieldError(field, message string) *ValidationError {
	if message == "" {
		message = "Invalid param: " + field
	}
	return &ValidationError{
		Kind:    InvalidField,
		Field:   field,
		Message: message,
	}
}

// AsValidationError reports whether err is (or wraps) a [*ValidationError]
// and returns it.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var (
	// ErrEmailCheckFailed wraps failures raised by an [EmailChecker].
	ErrEmailCheckFailed = errors.New("email checker failed")
)
