package shared

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class of a preparation error. The set is
// closed: every error surfaced by this module carries exactly one kind.
type ErrorKind string

const (
	// KindMXEConnectionFailed means the MXE public key could not be obtained
	// within the retry budget.
	KindMXEConnectionFailed ErrorKind = "mxe_connection_failed"
	// KindEncryptionFailed wraps a fault in the symmetric cipher.
	KindEncryptionFailed ErrorKind = "encryption_failed"
	// KindKeyGenerationFailed wraps a fault in the random source or the
	// curve operation.
	KindKeyGenerationFailed ErrorKind = "key_generation_failed"
	// KindAccountDerivationFailed wraps a fault in program-derived address
	// computation.
	KindAccountDerivationFailed ErrorKind = "account_derivation_failed"
	// KindInvalidInput means a caller-supplied value failed validation.
	KindInvalidInput ErrorKind = "invalid_input"
)

// Error is the single error type surfaced by the preparation pipeline.
// Callers branch on Kind to decide user messaging; Err preserves the
// underlying fault for diagnostics.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error with a formatted message and no underlying cause.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around an underlying fault.
func Wrap(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from err, or "" if err is not a pipeline error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a pipeline error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
