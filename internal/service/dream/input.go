package dream

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

const (
	MaxTextLength    = 10000
	MaxProfileLength = 500
	DefaultLimit     = 50
	MaxLimit         = 200
	MaxBackfillLimit = 1000
)

// SubmitInput holds the parameters for submitting a dream.
type SubmitInput struct {
	Text string
	// ProfileContext is optional caller-supplied context about the dreamer
	// (name, age) appended to the model prompt.
	ProfileContext *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 10000 characters"})
	}
	if i.ProfileContext != nil && utf8.RuneCountInString(strings.TrimSpace(*i.ProfileContext)) > MaxProfileLength {
		errs = append(errs, domain.FieldError{Field: "profile_context", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateImageInput holds the parameters for illustrating a dream.
type GenerateImageInput struct {
	DreamID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GenerateImageInput) Validate() error {
	if i.DreamID == uuid.Nil {
		return domain.NewValidationError("dream_id", "required")
	}
	return nil
}

// PatchNotesInput holds the parameters for replacing a dream's notes.
type PatchNotesInput struct {
	DreamID uuid.UUID
	// Notes is the new value; nil clears the notes.
	Notes *string
	// LastSeenUpdatedAt is the notesUpdatedAt the client last read, in
	// domain.TimestampLayout. Nil skips the conflict check.
	LastSeenUpdatedAt *string
}

// Validate checks all fields. Oversized notes are reported as
// domain.ErrTooLarge rather than a field validation error.
func (i PatchNotesInput) Validate() error {
	if i.DreamID == uuid.Nil {
		return domain.NewValidationError("dream_id", "required")
	}
	if n := domain.NormalizeNotes(i.Notes); n != nil && utf8.RuneCountInString(*n) > domain.MaxNotesLength {
		return &NotesTooLargeError{Length: utf8.RuneCountInString(*n)}
	}
	return nil
}

// NotesTooLargeError is returned for notes longer than domain.MaxNotesLength.
type NotesTooLargeError struct {
	Length int
}

func (e *NotesTooLargeError) Error() string {
	return "notes exceed the maximum length"
}

func (e *NotesTooLargeError) Unwrap() error { return domain.ErrTooLarge }

// SetHiddenInput holds the parameters for changing a dream's visibility.
type SetHiddenInput struct {
	DreamID uuid.UUID
	Hidden  bool
}

// Validate checks all fields and collects all errors.
func (i SetHiddenInput) Validate() error {
	if i.DreamID == uuid.Nil {
		return domain.NewValidationError("dream_id", "required")
	}
	return nil
}

// ListInput holds the parameters for listing the caller's dreams.
type ListInput struct {
	IncludeHidden bool
	Outcome       *domain.Outcome
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Outcome != nil && !i.Outcome.IsValid() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "must be dream, question or decline"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MissingImagesInput selects dreams for the illustration backfill.
type MissingImagesInput struct {
	UserID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i MissingImagesInput) Validate() error {
	if i.Limit < 1 || i.Limit > MaxBackfillLimit {
		return domain.NewValidationError("limit", "must be between 1 and 1000")
	}
	return nil
}
