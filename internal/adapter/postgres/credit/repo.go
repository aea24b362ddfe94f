// Package credit implements the CreditAccount repository using PostgreSQL.
// Balance changes are made under a row lock taken by GetOrCreateForUpdate,
// so callers must run them inside postgres.TxManager.RunInTx.
package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dreamr-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

const entity = "credit_account"

// Repo provides credit account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new credit account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `user_id, text_remaining_week, image_remaining_lifetime, week_anchor, created_at, updated_at`

const insertIfAbsentSQL = `
INSERT INTO credit_accounts (user_id, text_remaining_week, image_remaining_lifetime, week_anchor)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO NOTHING`

const selectForUpdateSQL = `
SELECT ` + columns + `
FROM credit_accounts
WHERE user_id = $1
FOR UPDATE`

const getSQL = `
SELECT ` + columns + `
FROM credit_accounts
WHERE user_id = $1`

const saveSQL = `
UPDATE credit_accounts
SET text_remaining_week = $2, image_remaining_lifetime = $3, week_anchor = $4, updated_at = now()
WHERE user_id = $1
RETURNING ` + columns

const addTextSQL = `
UPDATE credit_accounts
SET text_remaining_week = text_remaining_week + $2, updated_at = now()
WHERE user_id = $1`

const addImageSQL = `
UPDATE credit_accounts
SET image_remaining_lifetime = image_remaining_lifetime + $2, updated_at = now()
WHERE user_id = $1`

const lockTimeoutSQL = `SELECT set_config('lock_timeout', $1, true)`

// SetLockTimeout bounds how long statements in the current transaction wait
// for row locks. Lock waits past the limit fail with SQLSTATE 55P03.
func (r *Repo) SetLockTimeout(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, lockTimeoutSQL, fmt.Sprintf("%dms", d.Milliseconds())); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}
	return nil
}

// GetOrCreateForUpdate inserts seed when the user has no account yet, then
// returns the stored account locked FOR UPDATE until the surrounding
// transaction ends. An existing account is never overwritten by seed.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, seed domain.CreditAccount) (*domain.CreditAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	userID := seed.UserID

	if _, err := q.Exec(ctx, insertIfAbsentSQL,
		userID, seed.TextRemainingWeek, seed.ImageRemainingLifetime, seed.WeekAnchor.UTC(),
	); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	acc, err := scanAccount(q.QueryRow(ctx, selectForUpdateSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return acc, nil
}

// Get returns the account without locking it.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.CreditAccount, error) {
	acc, err := scanAccount(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return acc, nil
}

// Save writes balances and anchor of an account previously locked by
// GetOrCreateForUpdate in the same transaction.
func (r *Repo) Save(ctx context.Context, acc *domain.CreditAccount) (*domain.CreditAccount, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, saveSQL,
		acc.UserID, acc.TextRemainingWeek, acc.ImageRemainingLifetime, acc.WeekAnchor.UTC(),
	)
	saved, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, acc.UserID)
	}
	return saved, nil
}

// AddText adds delta text credits in a single statement. It reports whether
// an account row existed.
func (r *Repo) AddText(ctx context.Context, userID uuid.UUID, delta int) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addTextSQL, userID, delta)
	if err != nil {
		return false, postgres.MapError(err, entity, userID)
	}
	return tag.RowsAffected() > 0, nil
}

// AddImage adds delta image credits in a single statement. It reports whether
// an account row existed.
func (r *Repo) AddImage(ctx context.Context, userID uuid.UUID, delta int) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addImageSQL, userID, delta)
	if err != nil {
		return false, postgres.MapError(err, entity, userID)
	}
	return tag.RowsAffected() > 0, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAccount(row scannable) (*domain.CreditAccount, error) {
	var a domain.CreditAccount
	if err := row.Scan(
		&a.UserID, &a.TextRemainingWeek, &a.ImageRemainingLifetime, &a.WeekAnchor, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.WeekAnchor = a.WeekAnchor.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
