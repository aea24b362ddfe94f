// Package entitlement reads subscription tiers maintained by the billing
// side of the system. This service never writes them.
package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/dreamr-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

// rowQuerier is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo resolves a user's entitlement.
type Repo struct {
	q   rowQuerier
	now func() time.Time
}

// New creates a new entitlement repository.
func New(q rowQuerier) *Repo {
	return &Repo{q: q, now: time.Now}
}

const getSQL = `SELECT tier, expires_at FROM entitlements WHERE user_id = $1`

// Get returns the stored entitlement. Users without a row are on the free tier.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Entitlement, error) {
	var (
		tier      string
		expiresAt *time.Time
	)

	err := r.q.QueryRow(ctx, getSQL, userID).Scan(&tier, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.Entitlement{UserID: userID, Tier: domain.TierFree}, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "entitlement", userID)
	}

	t := domain.Tier(tier)
	switch t {
	case domain.TierFree, domain.TierTrial, domain.TierPro:
	default:
		return nil, fmt.Errorf("entitlement %s: unknown tier %q", userID, tier)
	}

	return &domain.Entitlement{UserID: userID, Tier: t, ExpiresAt: expiresAt}, nil
}

// IsEntitled reports whether the user currently bypasses quota gating.
// An expired trial or pro row counts as not entitled.
func (r *Repo) IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error) {
	e, err := r.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return e.Active(r.now()), nil
}
