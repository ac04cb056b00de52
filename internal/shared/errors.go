package shared

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a ledger or transaction id that does not exist.
// Read-only lookups return absence as a boolean instead; handlers use this
// sentinel when they have to turn that absence into a response.
var ErrNotFound = errors.New("books: not found")

// ValidationError describes input rejected by entry or journal validation.
// The input is wrong; correcting it and resubmitting is the only recovery.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LimitationError marks well-formed input outside the supported entry
// shapes, as opposed to input that is wrong.
type LimitationError struct {
	Reason string
}

func (e *LimitationError) Error() string {
	return "limitation: " + e.Reason
}

// Limitationf builds a LimitationError from a format string.
func Limitationf(format string, args ...any) error {
	return &LimitationError{Reason: fmt.Sprintf(format, args...)}
}

// IsLimitation reports whether err is a LimitationError.
func IsLimitation(err error) bool {
	var le *LimitationError
	return errors.As(err, &le)
}
