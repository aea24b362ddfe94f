package dream

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

// GetDream returns one of the caller's dreams. Dreams owned by someone else
// are reported as not found.
func (s *Service) GetDream(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.dreams.GetByID(ctx, userID, dreamID)
	if err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}
	return d, nil
}

// ListDreams returns a page of the caller's dreams, newest first, and the
// total number matching the filter.
func (s *Service) ListDreams(ctx context.Context, input ListInput) ([]domain.Dream, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	dreams, total, err := s.dreams.List(ctx, userID, domain.DreamFilter{
		IncludeHidden: input.IncludeHidden,
		Outcome:       input.Outcome,
		Limit:         limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list dreams: %w", err)
	}
	return dreams, total, nil
}

// FindMissingImages selects illustratable dreams that have no image yet,
// oldest first. It is not scoped to the caller and serves the backfill job.
func (s *Service) FindMissingImages(ctx context.Context, input MissingImagesInput) ([]domain.Dream, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dreams, err := s.dreams.FindMissingImages(ctx, domain.MissingImageFilter{
		UserID: input.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("find dreams missing images: %w", err)
	}
	return dreams, nil
}
