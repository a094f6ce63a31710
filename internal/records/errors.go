package records

import (
	"errors"
	"fmt"
	"log/slog"
)

// ValidationError reports caller input that cannot be accepted: an empty
// required field, a source file that does not exist. The message is
// user-facing; there is nothing to retry.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation returns true if the error is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// bestEffort runs a secondary write whose failure must not abort or fail
// the primary operation. The error is logged and deliberately dropped.
func bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		slog.Warn("best-effort step failed", "op", op, "error", err)
	}
}
