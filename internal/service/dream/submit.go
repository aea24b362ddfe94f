package dream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

// Submit records a dream, analyzes it and classifies the reply.
//
// Non-entitled callers spend one weekly text credit up front. If analysis
// fails after the credit was taken it is refunded and the bare record is
// kept with no analysis.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
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

	charged := false
	if !entitled {
		granted, nextReset, err := s.ledger.DecrementTextOrDeny(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("spend text credit: %w", err)
		}
		if !granted {
			s.log.InfoContext(ctx, "text quota exhausted",
				slog.String("user_id", userID.String()),
			)
			return nil, &domain.QuotaExhaustedError{Kind: domain.CreditText, NextReset: &nextReset}
		}
		charged = true
	}

	text := strings.TrimSpace(input.Text)

	d, err := s.dreams.Create(ctx, userID, text)
	if err != nil {
		return nil, s.compensate(ctx, domain.CreditText, userID, charged, fmt.Errorf("create dream: %w", err))
	}

	reply, err := s.complete(ctx, analystPrompt(entitled), userPrompt(text, input.ProfileContext))
	if err != nil {
		s.log.ErrorContext(ctx, "dream analysis failed",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", d.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, s.compensate(ctx, domain.CreditText, userID, charged, fmt.Errorf("analyze dream %s: %w", d.ID, err))
	}

	fields := s.classify(reply)

	d, err = s.dreams.ApplyClassification(ctx, userID, d.ID, fields)
	if err != nil {
		return nil, s.compensate(ctx, domain.CreditText, userID, charged, fmt.Errorf("store classification: %w", err))
	}

	s.log.InfoContext(ctx, "dream classified",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", d.ID.String()),
		slog.String("outcome", fields.Outcome.String()),
		slog.Bool("entitled", entitled),
	)

	return &SubmitResult{
		Dream:               d,
		ShouldGenerateImage: s.offerImage(ctx, userID, d, entitled),
	}, nil
}

// classify turns a model reply into the fields written for its outcome.
func (s *Service) classify(reply string) domain.ClassifiedFields {
	c := s.classifier.Classify(reply)

	switch c.Outcome {
	case domain.OutcomeDecline:
		summary := domain.NonDreamSummary
		placeholder := s.cfg.DeclinePlaceholder
		return domain.ClassifiedFields{
			Analysis:  c.Analysis,
			Summary:   &summary,
			Outcome:   domain.OutcomeDecline,
			Hidden:    true,
			ImageFile: &placeholder,
		}

	case domain.OutcomeQuestion:
		placeholder := s.cfg.QuestionPlaceholder
		return domain.ClassifiedFields{
			Analysis:   c.Analysis,
			Summary:    c.Summary,
			Outcome:    domain.OutcomeQuestion,
			IsQuestion: true,
			ImageFile:  &placeholder,
		}

	default:
		var tone *domain.Tone
		if c.Tone != nil {
			if t, ok := domain.ParseTone(*c.Tone); ok {
				tone = &t
			}
		}
		return domain.ClassifiedFields{
			Analysis: c.Analysis,
			Summary:  c.Summary,
			Tone:     tone,
			Outcome:  domain.OutcomeDream,
		}
	}
}

// offerImage reports whether the client should offer illustration. A failed
// credit lookup only withholds the offer.
func (s *Service) offerImage(ctx context.Context, userID uuid.UUID, d *domain.Dream, entitled bool) bool {
	if !d.CanIllustrate() {
		return false
	}
	if entitled {
		return true
	}
	remaining, err := s.ledger.ImageRemaining(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "image credit lookup failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	return remaining > 0
}
