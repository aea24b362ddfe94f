// Package discussion lets entitled users ask follow-up questions about a
// dream that has already been analyzed.
package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

const MaxMessageLength = 4000

type dreamReader interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Dream, error)
}

type entitlementChecker interface {
	IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

type sessionStore interface {
	History(ctx context.Context, userID, dreamID uuid.UUID) ([]domain.Turn, error)
	Append(ctx context.Context, userID, dreamID uuid.UUID, turns ...domain.Turn) error
	Reset(ctx context.Context, userID, dreamID uuid.UUID) error
}

type conversation interface {
	Converse(ctx context.Context, system string, turns []domain.Turn) (string, error)
}

// Service runs dream discussions.
type Service struct {
	dreams       dreamReader
	entitlements entitlementChecker
	sessions     sessionStore
	llm          conversation
	log          *slog.Logger
}

// NewService creates a new discussion service.
func NewService(
	log *slog.Logger,
	dreams dreamReader,
	entitlements entitlementChecker,
	sessions sessionStore,
	llm conversation,
) *Service {
	return &Service{
		dreams:       dreams,
		entitlements: entitlements,
		sessions:     sessions,
		llm:          llm,
		log:          log.With("service", "discussion"),
	}
}

// DiscussInput holds one follow-up message.
type DiscussInput struct {
	DreamID uuid.UUID
	Message string
}

// Validate checks all fields and collects all errors.
func (i DiscussInput) Validate() error {
	var errs []domain.FieldError
	if i.DreamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dream_id", Message: "required"})
	}
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 4000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Discuss answers a follow-up message about one of the caller's dreams and
// records both sides of the exchange.
func (s *Service) Discuss(ctx context.Context, input DiscussInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	entitled, err := s.entitlements.IsEntitled(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("check entitlement: %w", err)
	}
	if !entitled {
		return "", domain.ErrForbidden
	}

	d, err := s.dreams.GetByID(ctx, userID, input.DreamID)
	if err != nil {
		return "", fmt.Errorf("get dream: %w", err)
	}
	if !discussable(d) {
		return "", domain.NewValidationError("dream_id", "only analyzed dreams and questions can be discussed")
	}

	history, err := s.sessions.History(ctx, userID, d.ID)
	if err != nil {
		return "", fmt.Errorf("load discussion: %w", err)
	}

	msg := domain.Turn{Role: domain.RoleUser, Content: strings.TrimSpace(input.Message)}
	turns := append(leadingUser(history), msg)

	reply, err := s.llm.Converse(ctx, systemPrompt(d), turns)
	if err != nil {
		return "", fmt.Errorf("discuss dream %s: %w", d.ID, err)
	}

	if err := s.sessions.Append(ctx, userID, d.ID, msg, domain.Turn{Role: domain.RoleAssistant, Content: reply}); err != nil {
		s.log.WarnContext(ctx, "discussion not saved",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", d.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "dream discussed",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", d.ID.String()),
		slog.Int("turns", len(turns)),
	)

	return reply, nil
}

// Reset forgets the discussion of one of the caller's dreams.
func (s *Service) Reset(ctx context.Context, dreamID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.dreams.GetByID(ctx, userID, dreamID); err != nil {
		return fmt.Errorf("get dream: %w", err)
	}

	if err := s.sessions.Reset(ctx, userID, dreamID); err != nil {
		return fmt.Errorf("reset discussion: %w", err)
	}

	s.log.InfoContext(ctx, "discussion reset",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)
	return nil
}

func discussable(d *domain.Dream) bool {
	if d.Outcome == nil || d.Analysis == nil {
		return false
	}
	return *d.Outcome == domain.OutcomeDream || *d.Outcome == domain.OutcomeQuestion
}

// leadingUser drops turns until the history starts with a user message, which
// trimming can break.
func leadingUser(history []domain.Turn) []domain.Turn {
	for len(history) > 0 && history[0].Role != domain.RoleUser {
		history = history[1:]
	}
	return history
}
