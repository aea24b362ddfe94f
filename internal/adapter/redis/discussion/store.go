// Package discussion keeps follow-up discussion turns in Redis, one list per
// user and dream. Lists expire after a period of inactivity and are trimmed to
// the most recent turns.
package discussion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

// Store is a Redis-backed session store.
type Store struct {
	rdb      redis.UniversalClient
	ttl      time.Duration
	maxTurns int
	log      *slog.Logger
}

// NewStore creates a Store. maxTurns <= 0 disables trimming.
func NewStore(rdb redis.UniversalClient, ttl time.Duration, maxTurns int, logger *slog.Logger) *Store {
	return &Store{
		rdb:      rdb,
		ttl:      ttl,
		maxTurns: maxTurns,
		log:      logger.With("adapter", "discussion"),
	}
}

func key(userID, dreamID uuid.UUID) string {
	return fmt.Sprintf("discussion:%s:%s", userID, dreamID)
}

// History returns the stored turns, oldest first. A missing session is empty.
func (s *Store) History(ctx context.Context, userID, dreamID uuid.UUID) ([]domain.Turn, error) {
	raw, err := s.rdb.LRange(ctx, key(userID, dreamID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("discussion history: %w", err)
	}

	turns := make([]domain.Turn, 0, len(raw))
	for _, r := range raw {
		var t domain.Turn
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, fmt.Errorf("discussion history: decode turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// Append adds turns atomically, trims the list and refreshes its expiry.
func (s *Store) Append(ctx context.Context, userID, dreamID uuid.UUID, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]any, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("discussion append: encode turn: %w", err)
		}
		values = append(values, b)
	}

	k := key(userID, dreamID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, k, values...)
		if s.maxTurns > 0 {
			pipe.LTrim(ctx, k, int64(-s.maxTurns), -1)
		}
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("discussion append: %w", err)
	}
	return nil
}

// Reset drops the session.
func (s *Store) Reset(ctx context.Context, userID, dreamID uuid.UUID) error {
	if err := s.rdb.Del(ctx, key(userID, dreamID)).Err(); err != nil {
		return fmt.Errorf("discussion reset: %w", err)
	}
	s.log.DebugContext(ctx, "discussion reset",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)
	return nil
}
