package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
	"github.com/heartmarshall/dreamr-backend/pkg/ctxutil"
)

type creditStatusReader interface {
	Status(ctx context.Context, userID uuid.UUID) (*domain.CreditStatus, error)
}

type entitlementReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Entitlement, error)
}

// SubscriptionHandler reports the caller's tier and remaining credits.
type SubscriptionHandler struct {
	credits      creditStatusReader
	entitlements entitlementReader
	now          func() time.Time
	log          *slog.Logger
}

func NewSubscriptionHandler(credits creditStatusReader, entitlements entitlementReader, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		credits:      credits,
		entitlements: entitlements,
		now:          time.Now,
		log:          logger.With("handler", "subscription"),
	}
}

type subscriptionResponse struct {
	Tier                   string `json:"tier"`
	Unlimited              bool   `json:"unlimited"`
	TextRemainingWeek      int    `json:"textRemainingWeek"`
	ImageRemainingLifetime int    `json:"imageRemainingLifetime"`
	NextResetISO           string `json:"nextResetIso"`
}

// Status handles GET /api/subscription-status.
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	ent, err := h.entitlements.Get(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status, err := h.credits.Status(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// An expired paid tier is reported as free.
	tier := domain.TierFree
	active := ent.Active(h.now())
	if active {
		tier = ent.Tier
	}

	writeJSON(w, http.StatusOK, subscriptionResponse{
		Tier:                   tier.String(),
		Unlimited:              active,
		TextRemainingWeek:      status.TextRemainingWeek,
		ImageRemainingLifetime: status.ImageRemainingLifetime,
		NextResetISO:           domain.FormatTimestamp(status.NextReset),
	})
}
