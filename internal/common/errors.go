// Package common defines sentinel errors and small helpers shared by the
// tracker's storage, service and presentation layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrValidation is wrapped by every user-facing input error; the wrapping
	// message is what gets shown.
	ErrValidation = errors.New("validation error")

	// Account errors. ErrInvalidCredentials deliberately covers both an unknown
	// identifier and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")
	ErrNotLoaded   = errors.New("user data not loaded")
)

// ValidationError returns an error wrapping ErrValidation with msg as its text.
func ValidationError(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }
