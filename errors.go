package passhash

import (
	"errors"
	"fmt"

	"github.com/aloks98/passhash/scheme"
)

// Error codes for categorizing errors.
const (
	CodeEntropyUnavailable = "ENTROPY_UNAVAILABLE"
	CodePasswordTooLong    = "PASSWORD_TOO_LONG"
	CodeInvalidSalt        = "INVALID_SALT"
	CodeDigestMalformed    = "DIGEST_MALFORMED"
	CodeSchemeUnknown      = "SCHEME_UNKNOWN"
	CodeConfigInvalid      = "CONFIG_INVALID"
)

// Sentinel errors for use with errors.Is().
var (
	// Hashing errors, re-exported from the scheme package so callers can
	// match them without importing it.
	ErrEntropyUnavailable = scheme.ErrEntropyUnavailable
	ErrPasswordTooLong    = scheme.ErrPasswordTooLong
	ErrInvalidSalt        = scheme.ErrInvalidSalt
	ErrMalformedDigest    = scheme.ErrMalformedDigest
	ErrUnknownScheme      = scheme.ErrUnknownScheme

	// Config errors
	ErrConfigInvalid = errors.New("configuration is invalid")
)

// HashError is a structured error type that includes an error code and optional wrapped error.
type HashError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HashError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *HashError) Unwrap() error {
	return e.Err
}

// NewHashError creates a new HashError with the given code, message, and optional wrapped error.
func NewHashError(code, message string, err error) *HashError {
	return &HashError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsInputError returns true if the error concerns the caller's input
// (plaintext or salt) rather than a stored digest or the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrInvalidSalt)
}

// IsDigestError returns true if the error concerns a stored digest string.
func IsDigestError(err error) bool {
	return errors.Is(err, ErrMalformedDigest) ||
		errors.Is(err, ErrUnknownScheme)
}
