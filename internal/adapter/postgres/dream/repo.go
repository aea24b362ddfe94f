// Package dream implements the Dream repository using PostgreSQL.
// Fixed statements are raw SQL constants; listing and backfill selection are
// built with squirrel because their predicates depend on the filter.
package dream

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dreamr-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

const entity = "dream"

// Repo provides dream persistence backed by PostgreSQL.
// Every read and write that takes a userID uses it as a query predicate, so a
// record owned by someone else is indistinguishable from a missing one.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dream repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const columns = `id, user_id, text, analysis, summary, tone, outcome, is_question, hidden,
       image_file, image_prompt, notes, notes_updated_at, created_at`

var columnList = []string{
	"id", "user_id", "text", "analysis", "summary", "tone", "outcome", "is_question", "hidden",
	"image_file", "image_prompt", "notes", "notes_updated_at", "created_at",
}

const createSQL = `
INSERT INTO dreams (id, user_id, text, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns

const getByIDSQL = `
SELECT ` + columns + `
FROM dreams
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const applyClassificationSQL = `
UPDATE dreams
SET analysis = $3, summary = $4, tone = $5, outcome = $6,
    is_question = $7, hidden = $8, image_file = $9
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

const setImageSQL = `
UPDATE dreams
SET image_file = $3, image_prompt = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

const updateNotesSQL = `
UPDATE dreams
SET notes = $3, notes_updated_at = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

const setHiddenSQL = `
UPDATE dreams
SET hidden = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a bare dream holding only its text.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, text string) (*domain.Dream, error) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, id, userID, text, now)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// ApplyClassification writes the outcome of response classification.
func (r *Repo) ApplyClassification(ctx context.Context, userID, id uuid.UUID, f domain.ClassifiedFields) (*domain.Dream, error) {
	var tone *string
	if f.Tone != nil {
		s := string(*f.Tone)
		tone = &s
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, applyClassificationSQL,
		id, userID, f.Analysis, f.Summary, tone, string(f.Outcome), f.IsQuestion, f.Hidden, f.ImageFile,
	)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// SetImage stores the generated illustration file name and the prompt used.
func (r *Repo) SetImage(ctx context.Context, userID, id uuid.UUID, imageFile, prompt string) (*domain.Dream, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setImageSQL, id, userID, imageFile, prompt)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// UpdateNotes replaces the notes and their timestamp. A nil notes clears them.
func (r *Repo) UpdateNotes(ctx context.Context, userID, id uuid.UUID, notes *string, updatedAt time.Time) (*domain.Dream, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateNotesSQL,
		id, userID, notes, updatedAt.UTC().Truncate(time.Microsecond),
	)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// SetHidden toggles visibility.
func (r *Repo) SetHidden(ctx context.Context, userID, id uuid.UUID, hidden bool) (*domain.Dream, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setHiddenSQL, id, userID, hidden)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dream by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Dream, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// GetByIDForUpdate is GetByID with a row lock. It must run inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Dream, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDForUpdateSQL, id, userID)
	d, err := scanDream(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// List returns a page of the user's dreams, newest first, plus the total
// number of rows matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if !filter.IncludeHidden {
		where = append(where, squirrel.Eq{"hidden": false})
	}
	if filter.Outcome != nil {
		where = append(where, squirrel.Eq{"outcome": string(*filter.Outcome)})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From("dreams").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count dreams: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dreams: %w", err)
	}

	sel := psql.Select(columnList...).From("dreams").Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}

	dreams, err := r.query(ctx, sel)
	if err != nil {
		return nil, 0, fmt.Errorf("list dreams: %w", err)
	}
	return dreams, total, nil
}

// FindMissingImages selects visible, non-question dreams classified as Dream
// whose illustration was never produced. Oldest first.
func (r *Repo) FindMissingImages(ctx context.Context, filter domain.MissingImageFilter) ([]domain.Dream, error) {
	where := squirrel.And{
		squirrel.Eq{"image_file": nil},
		squirrel.Eq{"outcome": string(domain.OutcomeDream)},
		squirrel.Eq{"hidden": false},
		squirrel.Eq{"is_question": false},
	}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}

	sel := psql.Select(columnList...).From("dreams").Where(where).OrderBy("created_at ASC")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}

	dreams, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("find dreams missing images: %w", err)
	}
	return dreams, nil
}

func (r *Repo) query(ctx context.Context, sel squirrel.SelectBuilder) ([]domain.Dream, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dreams []domain.Dream
	for rows.Next() {
		d, err := scanDream(rows)
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if dreams == nil {
		dreams = []domain.Dream{}
	}
	return dreams, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanDream(row scannable) (*domain.Dream, error) {
	var (
		d       domain.Dream
		tone    *string
		outcome *string
	)

	err := row.Scan(
		&d.ID, &d.UserID, &d.Text, &d.Analysis, &d.Summary, &tone, &outcome, &d.IsQuestion, &d.Hidden,
		&d.ImageFile, &d.ImagePrompt, &d.Notes, &d.NotesUpdatedAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tone != nil {
		t := domain.Tone(*tone)
		d.Tone = &t
	}
	if outcome != nil {
		o := domain.Outcome(*outcome)
		d.Outcome = &o
	}
	d.CreatedAt = d.CreatedAt.UTC()
	if d.NotesUpdatedAt != nil {
		u := d.NotesUpdatedAt.UTC()
		d.NotesUpdatedAt = &u
	}

	return &d, nil
}
