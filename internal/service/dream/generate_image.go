package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

// GenerateImage illustrates one of the caller's dreams. Hidden entries and
// anything not classified as a dream are skipped without error.
func (s *Service) GenerateImage(ctx context.Context, input GenerateImageInput) (*ImageResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entitled, err := s.entitlements.IsEntitled(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check entitlement: %w", err)
	}

	return s.illustrate(ctx, userID, input.DreamID, !entitled)
}

// RegenerateImage illustrates a dream on behalf of the backfill job. No
// credit is charged.
func (s *Service) RegenerateImage(ctx context.Context, userID, dreamID uuid.UUID) (*ImageResult, error) {
	return s.illustrate(ctx, userID, dreamID, false)
}

func (s *Service) illustrate(ctx context.Context, userID, dreamID uuid.UUID, charge bool) (*ImageResult, error) {
	d, err := s.dreams.GetByID(ctx, userID, dreamID)
	if err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}

	if !d.CanIllustrate() {
		s.log.InfoContext(ctx, "image generation skipped",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", d.ID.String()),
		)
		return &ImageResult{Dream: d, Skipped: true, ImageFile: d.ImageFile}, nil
	}

	if charge {
		granted, err := s.ledger.DecrementImageOrDeny(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("spend image credit: %w", err)
		}
		if !granted {
			s.log.InfoContext(ctx, "image quota exhausted",
				slog.String("user_id", userID.String()),
			)
			return nil, &domain.QuotaExhaustedError{Kind: domain.CreditImage}
		}
	}

	fail := func(err error) (*ImageResult, error) {
		s.log.ErrorContext(ctx, "image generation failed",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", d.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, s.compensate(ctx, domain.CreditImage, userID, charge, err)
	}

	// Entitled prompts are used for the backfill as well.
	scene, err := s.complete(ctx, imageRewritePrompt(!charge), d.Text)
	if err != nil {
		return fail(fmt.Errorf("rewrite image prompt: %w", err))
	}
	prompt := imagePrompt(scene, pickStyle(d.Tone, s.intn))

	data, err := s.images.Generate(ctx, prompt, s.cfg.ImageSize)
	if err != nil {
		return fail(fmt.Errorf("generate image: %w", err))
	}

	name, err := s.files.Save(ctx, data)
	if err != nil {
		return fail(fmt.Errorf("store image: %w: %w", domain.ErrFetchFailure, err))
	}

	if err := s.files.Thumbnail(ctx, name); err != nil {
		s.log.WarnContext(ctx, "thumbnail failed",
			slog.String("dream_id", d.ID.String()),
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
	}

	previous := d.ImageFile

	updated, err := s.dreams.SetImage(ctx, userID, d.ID, name, prompt)
	if err != nil {
		s.removeFile(ctx, name)
		return fail(fmt.Errorf("store image reference: %w", err))
	}

	if previous != nil && *previous != name {
		s.removeFile(ctx, *previous)
	}

	s.log.InfoContext(ctx, "dream illustrated",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", d.ID.String()),
		slog.String("file", name),
		slog.Bool("charged", charge),
	)

	return &ImageResult{
		Dream:     updated,
		ImageFile: updated.ImageFile,
		ImageURL:  s.imageURL(name),
	}, nil
}

func (s *Service) removeFile(ctx context.Context, name string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RefundTimeout)
	defer cancel()
	if err := s.files.Remove(ctx, name); err != nil {
		s.log.WarnContext(ctx, "remove image file failed",
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
	}
}
