// internal/app/lifecycle/errors.go
package lifecycle

import "errors"

var (
	// ErrNotFound means the referenced record does not exist (anymore).
	ErrNotFound = errors.New("record not found")

	// ErrIncorrectPassword means the supplied post password does not
	// match the stored hash. The record is left untouched.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidOTP means the supplied delivery code does not match the
	// one minted at request creation. The request is left untouched.
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrInvalidStatus means the requested status label is empty.
	ErrInvalidStatus = errors.New("status must not be empty")
)
