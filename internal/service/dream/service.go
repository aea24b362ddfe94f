// Package dream runs the submission pipeline: credit gating, text analysis,
// classification, illustration and the owner-editable parts of an entry.
package dream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

type dreamRepo interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*domain.Dream, error)
	ApplyClassification(ctx context.Context, userID, id uuid.UUID, f domain.ClassifiedFields) (*domain.Dream, error)
	SetImage(ctx context.Context, userID, id uuid.UUID, imageFile, prompt string) (*domain.Dream, error)
	UpdateNotes(ctx context.Context, userID, id uuid.UUID, notes *string, updatedAt time.Time) (*domain.Dream, error)
	SetHidden(ctx context.Context, userID, id uuid.UUID, hidden bool) (*domain.Dream, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Dream, error)
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Dream, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, int, error)
	FindMissingImages(ctx context.Context, filter domain.MissingImageFilter) ([]domain.Dream, error)
}

type creditLedger interface {
	DecrementTextOrDeny(ctx context.Context, userID uuid.UUID) (bool, time.Time, error)
	RefundText(ctx context.Context, userID uuid.UUID) error
	DecrementImageOrDeny(ctx context.Context, userID uuid.UUID) (bool, error)
	RefundImage(ctx context.Context, userID uuid.UUID) error
	ImageRemaining(ctx context.Context, userID uuid.UUID) (int, error)
}

type entitlementChecker interface {
	IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

type textGenerator interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type imageGenerator interface {
	Generate(ctx context.Context, prompt, size string) ([]byte, error)
}

type fileStore interface {
	Save(ctx context.Context, data []byte) (string, error)
	Thumbnail(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

type responseClassifier interface {
	Classify(content string) domain.Classification
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds pipeline settings.
type Config struct {
	// TextAttempts bounds calls to the text generator per stage, first try included.
	TextAttempts int
	TextBackoff  time.Duration
	ImageSize    string

	QuestionPlaceholder string
	DeclinePlaceholder  string
	// PublicURL is the URL prefix generated image files are served under.
	PublicURL string

	// RefundTimeout bounds a compensating refund, which runs even after the
	// caller's context is gone.
	RefundTimeout time.Duration
}

// Service is the dream pipeline.
type Service struct {
	dreams       dreamRepo
	ledger       creditLedger
	entitlements entitlementChecker
	text         textGenerator
	images       imageGenerator
	files        fileStore
	classifier   responseClassifier
	tx           txManager
	cfg          Config

	now  func() time.Time
	intn func(int) int
	log  *slog.Logger
}

// NewService creates a new dream service.
func NewService(
	log *slog.Logger,
	dreams dreamRepo,
	ledger creditLedger,
	entitlements entitlementChecker,
	text textGenerator,
	images imageGenerator,
	files fileStore,
	classifier responseClassifier,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.TextAttempts < 1 {
		cfg.TextAttempts = 1
	}
	if cfg.RefundTimeout <= 0 {
		cfg.RefundTimeout = 5 * time.Second
	}
	return &Service{
		dreams:       dreams,
		ledger:       ledger,
		entitlements: entitlements,
		text:         text,
		images:       images,
		files:        files,
		classifier:   classifier,
		tx:           tx,
		cfg:          cfg,
		now:          time.Now,
		intn:         rand.IntN,
		log:          log.With("service", "dream"),
	}
}

// complete calls the text generator, retrying transient failures and empty
// replies with a constant backoff.
func (s *Service) complete(ctx context.Context, system, prompt string) (string, error) {
	var (
		reply   string
		attempt int
	)
	op := func() error {
		attempt++
		out, err := s.text.Complete(ctx, system, prompt)
		if err != nil {
			if errors.Is(err, domain.ErrTransient) || errors.Is(err, domain.ErrGenerationEmpty) {
				return err
			}
			return backoff.Permanent(err)
		}
		if strings.TrimSpace(out) == "" {
			return domain.ErrGenerationEmpty
		}
		reply = out
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.TextBackoff), uint64(s.cfg.TextAttempts-1)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		s.log.WarnContext(ctx, "text generation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return "", err
	}
	return reply, nil
}

// compensate refunds a credit taken for a failed operation and returns cause,
// joined with the refund error if the refund itself failed.
func (s *Service) compensate(ctx context.Context, kind domain.CreditKind, userID uuid.UUID, charged bool, cause error) error {
	if !charged {
		return cause
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RefundTimeout)
	defer cancel()

	var err error
	switch kind {
	case domain.CreditText:
		err = s.ledger.RefundText(ctx, userID)
	case domain.CreditImage:
		err = s.ledger.RefundImage(ctx, userID)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "credit refund failed",
			slog.String("user_id", userID.String()),
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return errors.Join(cause, fmt.Errorf("refund %s credit: %w", kind, err))
	}

	s.log.InfoContext(ctx, "credit refunded",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
	)
	return cause
}

func (s *Service) imageURL(name string) string {
	return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + strings.TrimLeft(name, "/")
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
