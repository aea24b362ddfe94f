package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeekLength is the span between two weekly resets.
const WeekLength = 7 * 24 * time.Hour

// CreditAccount holds a user's remaining free-tier credits.
type CreditAccount struct {
	UserID                 uuid.UUID
	TextRemainingWeek      int
	ImageRemainingLifetime int
	WeekAnchor             time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NextReset returns the time text credits are replenished next.
func (a *CreditAccount) NextReset() time.Time {
	return a.WeekAnchor.Add(WeekLength)
}

// CreditStatus is the read model behind the subscription status endpoint.
type CreditStatus struct {
	Tier                   Tier
	TextRemainingWeek      int
	ImageRemainingLifetime int
	NextReset              time.Time
}

// Entitlement is the subscription state of a user as seen by this service.
type Entitlement struct {
	UserID    uuid.UUID
	Tier      Tier
	ExpiresAt *time.Time
}

// Active reports whether the entitlement grants unlimited use at now.
func (e *Entitlement) Active(now time.Time) bool {
	if !e.Tier.Entitled() {
		return false
	}
	return e.ExpiresAt == nil || e.ExpiresAt.After(now)
}
