package dream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

// PatchNotes replaces the owner's notes on a dream.
//
// When LastSeenUpdatedAt is set it must equal the stored notesUpdatedAt
// exactly, otherwise a *domain.NotesConflictError carrying the current state
// is returned. Writing the value already stored is a no-op and leaves
// notesUpdatedAt untouched.
func (s *Service) PatchNotes(ctx context.Context, input PatchNotesInput) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	next := domain.NormalizeNotes(input.Notes)

	var (
		result  *domain.Dream
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.dreams.GetByIDForUpdate(txCtx, userID, input.DreamID)
		if err != nil {
			return fmt.Errorf("get dream: %w", err)
		}

		if input.LastSeenUpdatedAt != nil && *input.LastSeenUpdatedAt != domain.FormatTimestampPtr(current.NotesUpdatedAt) {
			return &domain.NotesConflictError{
				Notes:          current.Notes,
				NotesUpdatedAt: current.NotesUpdatedAt,
			}
		}

		if sameNotes(current.Notes, next) {
			result = current
			return nil
		}

		result, err = s.dreams.UpdateNotes(txCtx, userID, current.ID, next, s.now().UTC())
		if err != nil {
			return fmt.Errorf("update notes: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "notes updated",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", result.ID.String()),
		)
	}

	return result, nil
}

func sameNotes(current, next *string) bool {
	return strings.TrimSpace(deref(current)) == strings.TrimSpace(deref(next))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
