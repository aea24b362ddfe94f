// Package ledger gates text and image generation for non-entitled users.
//
// Each account holds a weekly text allotment and a lifetime image allotment.
// Every balance change runs as one transaction that locks the account row,
// so concurrent requests for the same user are serialized and can never
// spend the same credit twice.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

type creditRepo interface {
	SetLockTimeout(ctx context.Context, d time.Duration) error
	GetOrCreateForUpdate(ctx context.Context, seed domain.CreditAccount) (*domain.CreditAccount, error)
	Save(ctx context.Context, acc *domain.CreditAccount) (*domain.CreditAccount, error)
	AddText(ctx context.Context, userID uuid.UUID, delta int) (bool, error)
	AddImage(ctx context.Context, userID uuid.UUID, delta int) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the credit ledger.
type Service struct {
	credits creditRepo
	tx      txManager
	cfg     config.QuotaConfig
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a ledger. cfg must have passed config validation so the
// parsed reset weekday and location are populated.
func NewService(log *slog.Logger, credits creditRepo, tx txManager, cfg config.QuotaConfig) *Service {
	if cfg.ResetLocation == nil {
		cfg.ResetLocation = time.UTC
	}
	return &Service{
		credits: credits,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "ledger"),
	}
}

// EnsureCurrent returns the user's account after applying any pending weekly
// rollover, creating it on first use.
func (s *Service) EnsureCurrent(ctx context.Context, userID uuid.UUID) (*domain.CreditAccount, error) {
	var acc *domain.CreditAccount
	err := s.locked(ctx, "ensure_current", userID, func(txCtx context.Context) error {
		var err error
		acc, err = s.current(txCtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// DecrementTextOrDeny spends one weekly text credit. When none is left it
// returns ok=false and the time of the next weekly reset.
func (s *Service) DecrementTextOrDeny(ctx context.Context, userID uuid.UUID) (bool, time.Time, error) {
	var (
		ok        bool
		nextReset time.Time
	)
	err := s.locked(ctx, "decrement_text", userID, func(txCtx context.Context) error {
		ok = false
		acc, err := s.current(txCtx, userID)
		if err != nil {
			return err
		}
		nextReset = acc.NextReset()
		if acc.TextRemainingWeek <= 0 {
			return nil
		}
		acc.TextRemainingWeek--
		if _, err := s.credits.Save(txCtx, acc); err != nil {
			return fmt.Errorf("save account: %w", err)
		}
		ok = true
		return nil
	})
	if err != nil {
		return false, time.Time{}, err
	}

	s.log.InfoContext(ctx, "text credit decrement",
		slog.String("user_id", userID.String()),
		slog.Bool("granted", ok),
	)
	return ok, nextReset, nil
}

// DecrementImageOrDeny spends one lifetime image credit.
func (s *Service) DecrementImageOrDeny(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := s.locked(ctx, "decrement_image", userID, func(txCtx context.Context) error {
		ok = false
		acc, err := s.current(txCtx, userID)
		if err != nil {
			return err
		}
		if acc.ImageRemainingLifetime <= 0 {
			return nil
		}
		acc.ImageRemainingLifetime--
		if _, err := s.credits.Save(txCtx, acc); err != nil {
			return fmt.Errorf("save account: %w", err)
		}
		ok = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "image credit decrement",
		slog.String("user_id", userID.String()),
		slog.Bool("granted", ok),
	)
	return ok, nil
}

// RefundText gives back one text credit. It does not check the weekly ceiling.
func (s *Service) RefundText(ctx context.Context, userID uuid.UUID) error {
	return s.refund(ctx, "refund_text", userID, s.credits.AddText)
}

// RefundImage gives back one image credit.
func (s *Service) RefundImage(ctx context.Context, userID uuid.UUID) error {
	return s.refund(ctx, "refund_image", userID, s.credits.AddImage)
}

// ImageRemaining returns the lifetime image credits left.
func (s *Service) ImageRemaining(ctx context.Context, userID uuid.UUID) (int, error) {
	acc, err := s.EnsureCurrent(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.ImageRemainingLifetime, nil
}

// Status returns balances and the next reset. Tier is left for the caller,
// which knows the user's entitlement.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*domain.CreditStatus, error) {
	acc, err := s.EnsureCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.CreditStatus{
		TextRemainingWeek:      acc.TextRemainingWeek,
		ImageRemainingLifetime: acc.ImageRemainingLifetime,
		NextReset:              acc.NextReset(),
	}, nil
}

// current loads the locked account and rolls it over when a reset boundary
// has passed since its anchor. It must run inside a ledger transaction.
func (s *Service) current(ctx context.Context, userID uuid.UUID) (*domain.CreditAccount, error) {
	boundary := WeekStart(s.now(), s.cfg.ResetWeekday, s.cfg.ResetLocation)

	acc, err := s.credits.GetOrCreateForUpdate(ctx, domain.CreditAccount{
		UserID:                 userID,
		TextRemainingWeek:      s.cfg.WeeklyTextCredits,
		ImageRemainingLifetime: s.cfg.LifetimeImageCredits,
		WeekAnchor:             boundary,
	})
	if err != nil {
		return nil, fmt.Errorf("lock account: %w", err)
	}

	if !boundary.After(acc.WeekAnchor) {
		return acc, nil
	}

	acc.TextRemainingWeek = s.cfg.WeeklyTextCredits
	acc.WeekAnchor = boundary
	saved, err := s.credits.Save(ctx, acc)
	if err != nil {
		return nil, fmt.Errorf("roll over account: %w", err)
	}

	s.log.InfoContext(ctx, "weekly credits reset",
		slog.String("user_id", userID.String()),
		slog.Time("week_anchor", boundary),
	)
	return saved, nil
}

// locked runs fn in a transaction with the configured lock timeout and retries
// the whole transaction on transient storage failures. A failed attempt rolls
// back entirely, so a retry never applies a change twice.
func (s *Service) locked(ctx context.Context, op string, userID uuid.UUID, fn func(ctx context.Context) error) error {
	return s.withRetry(ctx, op, userID, func(ctx context.Context) error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.credits.SetLockTimeout(txCtx, s.cfg.LockTimeout); err != nil {
				return err
			}
			return fn(txCtx)
		})
	})
}

func (s *Service) refund(
	ctx context.Context,
	op string,
	userID uuid.UUID,
	add func(ctx context.Context, userID uuid.UUID, delta int) (bool, error),
) error {
	var found bool
	err := s.withRetry(ctx, op, userID, func(ctx context.Context) error {
		var err error
		found, err = add(ctx, userID, 1)
		return err
	})
	if err != nil {
		s.log.ErrorContext(ctx, "credit refund failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		s.log.WarnContext(ctx, "refund for missing credit account",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
		return nil
	}

	s.log.InfoContext(ctx, "credit refunded",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)
	return nil
}

func (s *Service) withRetry(ctx context.Context, op string, userID uuid.UUID, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(s.cfg.MaxRetries), retry.NewConstant(s.retryBackoff()))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && errors.Is(err, domain.ErrTransient) {
			s.log.WarnContext(ctx, "ledger transient failure, retrying",
				slog.String("op", op),
				slog.String("user_id", userID.String()),
				slog.Int("attempt", attempt),
			)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *Service) retryBackoff() time.Duration {
	if s.cfg.RetryBackoff <= 0 {
		return time.Millisecond
	}
	return s.cfg.RetryBackoff
}
