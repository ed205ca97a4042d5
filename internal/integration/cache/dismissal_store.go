// Package cache implements short-lived per-user state on Redis or in memory.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// DefaultDismissalTTL bounds how long an idle user's dismissals are kept.
const DefaultDismissalTTL = 30 * 24 * time.Hour

// redisDismissalStore implements adapter.DismissalStore on Redis.
//
// Keys:
//
//	signals:period:{userID}               active period key, e.g. "2025-03"
//	signals:dismissed:{userID}:{period}   set of dismissed alert ids
type redisDismissalStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDismissalStore creates a DismissalStore backed by Redis.
func NewRedisDismissalStore(client *redis.Client, ttl time.Duration) adapter.DismissalStore {
	if ttl <= 0 {
		ttl = DefaultDismissalTTL
	}
	return &redisDismissalStore{
		client: client,
		ttl:    ttl,
	}
}

func periodKey(userID uuid.UUID) string {
	return "signals:period:" + userID.String()
}

func dismissedKey(userID uuid.UUID, periodKey string) string {
	return "signals:dismissed:" + userID.String() + ":" + periodKey
}

// Activate swaps the active period and drops the previous period's set when it changes.
func (s *redisDismissalStore) Activate(ctx context.Context, userID uuid.UUID, period entity.Period) error {
	key := periodKey(userID)
	previous, err := s.client.GetSet(ctx, key, period.Key()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to swap active period: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Expire(ctx, key, s.ttl)
		if previous != "" && previous != period.Key() {
			pipe.Del(ctx, dismissedKey(userID, previous))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear previous dismissals: %w", err)
	}
	return nil
}

// Dismiss adds alertID to the period's set.
func (s *redisDismissalStore) Dismiss(ctx context.Context, userID uuid.UUID, period entity.Period, alertID string) error {
	key := dismissedKey(userID, period.Key())
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, alertID)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record dismissal: %w", err)
	}
	return nil
}

// Dismissed returns the period's set of dismissed ids.
func (s *redisDismissalStore) Dismissed(ctx context.Context, userID uuid.UUID, period entity.Period) (map[string]struct{}, error) {
	members, err := s.client.SMembers(ctx, dismissedKey(userID, period.Key())).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read dismissals: %w", err)
	}

	dismissed := make(map[string]struct{}, len(members))
	for _, id := range members {
		dismissed[id] = struct{}{}
	}
	return dismissed, nil
}
