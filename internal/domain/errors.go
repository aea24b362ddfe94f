package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrTooLarge      = errors.New("too large")

	ErrQuotaExhausted  = errors.New("quota exhausted")
	ErrGenerationEmpty = errors.New("generation returned no usable content")
	ErrProviderFailure = errors.New("provider failure")
	ErrFetchFailure    = errors.New("image fetch failure")

	// ErrTransient marks storage failures that are safe to retry
	// (serialization failures, deadlocks, lock timeouts).
	ErrTransient = errors.New("transient storage error")
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

// QuotaExhaustedError is returned when a non-entitled user has no credit
// left of the given kind. NextReset is set for weekly (text) credits only.
type QuotaExhaustedError struct {
	Kind      CreditKind
	NextReset *time.Time
}

func (e *QuotaExhaustedError) Error() string {
	if e.NextReset != nil {
		return fmt.Sprintf("%s quota exhausted until %s", e.Kind, FormatTimestamp(*e.NextReset))
	}
	return fmt.Sprintf("%s quota exhausted", e.Kind)
}

func (e *QuotaExhaustedError) Unwrap() error { return ErrQuotaExhausted }

// NotesConflictError carries the server's current notes state when a client
// patched notes based on a stale notesUpdatedAt.
type NotesConflictError struct {
	Notes          *string
	NotesUpdatedAt *time.Time
}

func (e *NotesConflictError) Error() string {
	return "notes were modified by another client"
}

func (e *NotesConflictError) Unwrap() error { return ErrConflict }
