package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrResolution = errors.New("resolution error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ResolutionError reports that a report filter names something the
// database does not contain. The report is aborted without partial output.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string { return e.Message }

func (e *ResolutionError) Unwrap() error { return ErrResolution }

// Messages of the resolution failures.
const (
	MsgNoLanguageGroup = "No such language parent group in the database"
	MsgNoLanguage      = "No such language group or title in the database"
	MsgNoPerspective   = "No such perspective in the database"
)

// NewResolutionError creates a ResolutionError with the given message.
func NewResolutionError(message string) *ResolutionError {
	return &ResolutionError{Message: message}
}
