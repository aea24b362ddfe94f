package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/internal/service/dream"
)

// RegenOptions selects what the image backfill processes.
type RegenOptions struct {
	DryRun bool
	// Limit caps the number of dreams; 0 uses regen.batch_limit.
	Limit int
	// UserID restricts the run to one user's dreams.
	UserID *uuid.UUID
}

// RegenReport summarizes a backfill run.
type RegenReport struct {
	Found     int
	Generated int
	Skipped   int
	Failed    int
}

type backfiller interface {
	FindMissingImages(ctx context.Context, input dream.MissingImagesInput) ([]domain.Dream, error)
	RegenerateImage(ctx context.Context, userID, dreamID uuid.UUID) (*dream.ImageResult, error)
}

// RunRegen illustrates dreams that are eligible for an image but have none.
// No user credits are charged.
func RunRegen(ctx context.Context, opts RegenOptions) (*RegenReport, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	p, err := newPipeline(cfg, pool, logger)
	if err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		opts.Limit = cfg.Regen.BatchLimit
	}

	return regenerate(ctx, p.service, opts, cfg.Regen.Concurrency, logger.With("job", "regen-images"))
}

func regenerate(ctx context.Context, svc backfiller, opts RegenOptions, concurrency int, logger *slog.Logger) (*RegenReport, error) {
	dreams, err := svc.FindMissingImages(ctx, dream.MissingImagesInput{UserID: opts.UserID, Limit: opts.Limit})
	if err != nil {
		return nil, err
	}

	report := &RegenReport{Found: len(dreams)}
	if len(dreams) == 0 {
		logger.InfoContext(ctx, "nothing to do")
		return report, nil
	}

	logger.InfoContext(ctx, "dreams missing images", slog.Int("count", len(dreams)))

	if opts.DryRun {
		for _, d := range dreams {
			logger.InfoContext(ctx, "would generate",
				slog.String("dream_id", d.ID.String()),
				slog.String("user_id", d.UserID.String()),
			)
		}
		return report, nil
	}

	if concurrency < 1 {
		concurrency = 1
	}

	var generated, skipped, failed atomic.Int64

	// Individual failures are counted, not propagated, so one bad dream does
	// not cancel the rest of the batch.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, d := range dreams {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := svc.RegenerateImage(gctx, d.UserID, d.ID)
			switch {
			case err != nil:
				failed.Add(1)
				logger.ErrorContext(gctx, "image generation failed",
					slog.String("dream_id", d.ID.String()),
					slog.String("error", err.Error()),
				)
			case res.Skipped:
				skipped.Add(1)
			default:
				generated.Add(1)
				logger.InfoContext(gctx, "image generated",
					slog.String("dream_id", d.ID.String()),
					slog.String("image_file", derefOr(res.ImageFile, "")),
				)
			}
			return nil
		})
	}

	_ = g.Wait()

	report.Generated = int(generated.Load())
	report.Skipped = int(skipped.Load())
	report.Failed = int(failed.Load())

	logger.InfoContext(ctx, "backfill finished",
		slog.Int("found", report.Found),
		slog.Int("generated", report.Generated),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, ctx.Err()
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
