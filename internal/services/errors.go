package services

import (
	"errors"
	"fmt"
	"strings"

	apperrors "consultsite/pkg/errors"
)

// FieldError describes one rejected inquiry field
type FieldError struct {
	Field  string // JSON field name
	Rule   string // failed rule, e.g. "required", "email", "max"
	Reason string // human readable reason
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "invalid inquiry: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ValidationError against the VALIDATION_ERROR code
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*apperrors.AppError)
	return ok && t.Code == apperrors.ErrCodeValidation
}

// HasField reports whether field failed validation
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// AsValidationError extracts a ValidationError from err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// NewSubmissionFailed wraps a storage error into the caller-facing
// SUBMISSION_FAILED error. Only the short storage message is exposed.
func NewSubmissionFailed(err error) *apperrors.AppError {
	detail := apperrors.Truncate(err.Error(), 120)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		detail = appErr.Message
	}
	return apperrors.Wrap(apperrors.ErrCodeSubmissionFailed, "failed to save inquiry: "+detail, err)
}
