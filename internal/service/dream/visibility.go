package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

// SetHidden hides or un-hides one of the caller's dreams.
func (s *Service) SetHidden(ctx context.Context, input SetHiddenInput) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.dreams.SetHidden(ctx, userID, input.DreamID, input.Hidden)
	if err != nil {
		return nil, fmt.Errorf("set hidden: %w", err)
	}

	s.log.InfoContext(ctx, "dream visibility changed",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", d.ID.String()),
		slog.Bool("hidden", d.Hidden),
	)

	return d, nil
}
