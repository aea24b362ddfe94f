package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNotesLength is the maximum number of characters allowed in dream notes.
const MaxNotesLength = 8000

// NonDreamSummary is the fixed summary stored for declined entries.
const NonDreamSummary = "Non-dream entry"

// Dream is one user-authored journal entry: a dream narrative or a question.
type Dream struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Text           string
	Analysis       *string
	Summary        *string
	Tone           *Tone
	Outcome        *Outcome
	IsQuestion     bool
	Hidden         bool
	ImageFile      *string
	ImagePrompt    *string
	Notes          *string
	NotesUpdatedAt *time.Time
	CreatedAt      time.Time
}

// DreamState is the pipeline stage a dream record is in.
type DreamState string

const (
	DreamStateCreated     DreamState = "created"
	DreamStateClassified  DreamState = "classified"
	DreamStateIllustrated DreamState = "illustrated"
)

// State derives the pipeline stage from the stored fields.
func (d *Dream) State() DreamState {
	if d.Outcome == nil {
		return DreamStateCreated
	}
	if *d.Outcome == OutcomeDream && d.ImageFile != nil {
		return DreamStateIllustrated
	}
	return DreamStateClassified
}

// CanIllustrate reports whether image generation may run for this record.
// Only visible entries classified as dreams qualify.
func (d *Dream) CanIllustrate() bool {
	if d.Outcome == nil || *d.Outcome != OutcomeDream {
		return false
	}
	return !d.Hidden && !d.IsQuestion
}

// Classification is the structured result of parsing a model reply.
type Classification struct {
	Analysis *string
	Summary  *string
	Tone     *string
	Outcome  Outcome
}

// ClassifiedFields holds the columns written when a dream is classified.
type ClassifiedFields struct {
	Analysis   *string
	Summary    *string
	Tone       *Tone
	Outcome    Outcome
	IsQuestion bool
	Hidden     bool
	ImageFile  *string
}

// DreamFilter controls dream listing.
type DreamFilter struct {
	IncludeHidden bool
	Outcome       *Outcome
	Limit         int
	Offset        int
}

// MissingImageFilter selects classified dreams that still lack an illustration.
type MissingImageFilter struct {
	UserID *uuid.UUID
	Limit  int
}
