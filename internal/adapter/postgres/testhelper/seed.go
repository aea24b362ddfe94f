package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

// SeedDream inserts a bare (unclassified) dream for userID and returns it.
func SeedDream(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Dream {
	t.Helper()

	d := domain.Dream{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      "I was flying over a city made of glass " + uuid.New().String()[:8],
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO dreams (id, user_id, text, created_at) VALUES ($1, $2, $3, $4)`,
		d.ID, d.UserID, d.Text, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDream: %v", err)
	}

	return d
}

// SeedClassifiedDream inserts a dream already classified with the given outcome.
// Dream outcomes get tone "Peaceful / gentle"; other outcomes follow the
// pipeline's placeholder rules closely enough for repository tests.
func SeedClassifiedDream(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, outcome domain.Outcome) domain.Dream {
	t.Helper()

	d := SeedDream(t, pool, userID)
	analysis := "A calm dream about open skies."
	summary := "Glass city flight"
	d.Analysis = &analysis
	d.Summary = &summary
	d.Outcome = &outcome

	switch outcome {
	case domain.OutcomeDream:
		tone := domain.TonePeaceful
		d.Tone = &tone
	case domain.OutcomeQuestion:
		d.IsQuestion = true
		img := "placeholders/question.png"
		d.ImageFile = &img
	case domain.OutcomeDecline:
		s := domain.NonDreamSummary
		d.Summary = &s
		d.Hidden = true
		img := "placeholders/decline.png"
		d.ImageFile = &img
	}

	var tone *string
	if d.Tone != nil {
		s := string(*d.Tone)
		tone = &s
	}

	_, err := pool.Exec(context.Background(),
		`UPDATE dreams
		 SET analysis = $2, summary = $3, tone = $4, outcome = $5, is_question = $6, hidden = $7, image_file = $8
		 WHERE id = $1`,
		d.ID, d.Analysis, d.Summary, tone, string(outcome), d.IsQuestion, d.Hidden, d.ImageFile,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClassifiedDream: %v", err)
	}

	return d
}

// SeedCreditAccount inserts a credit account with explicit balances and anchor.
func SeedCreditAccount(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, text, image int, anchor time.Time) domain.CreditAccount {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.CreditAccount{
		UserID:                 userID,
		TextRemainingWeek:      text,
		ImageRemainingLifetime: image,
		WeekAnchor:             anchor.UTC().Truncate(time.Microsecond),
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO credit_accounts (user_id, text_remaining_week, image_remaining_lifetime, week_anchor, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		acc.UserID, acc.TextRemainingWeek, acc.ImageRemainingLifetime, acc.WeekAnchor, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCreditAccount: %v", err)
	}

	return acc
}

// SeedEntitlement upserts an entitlement row for userID.
func SeedEntitlement(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, tier domain.Tier, expiresAt *time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entitlements (user_id, tier, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET tier = EXCLUDED.tier, expires_at = EXCLUDED.expires_at`,
		userID, string(tier), expiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntitlement: %v", err)
	}
}
