package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

func newRedisStore(t *testing.T) (adapter.DismissalStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDismissalStore(client, time.Hour), mr
}

func TestDismissalStores(t *testing.T) {
	stores := map[string]func(t *testing.T) adapter.DismissalStore{
		"redis": func(t *testing.T) adapter.DismissalStore {
			store, _ := newRedisStore(t)
			return store
		},
		"memory": func(*testing.T) adapter.DismissalStore {
			return NewMemoryDismissalStore()
		},
	}

	march := entity.NewPeriod(3, 2025)
	april := entity.NewPeriod(4, 2025)

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			userID := uuid.New()
			otherUser := uuid.New()

			if err := store.Activate(ctx, userID, march); err != nil {
				t.Fatalf("activate: %v", err)
			}
			for _, id := range []string{"budget-c1", "budget-c1", "due-e1"} {
				if err := store.Dismiss(ctx, userID, march, id); err != nil {
					t.Fatalf("dismiss: %v", err)
				}
			}

			dismissed, err := store.Dismissed(ctx, userID, march)
			if err != nil {
				t.Fatalf("dismissed: %v", err)
			}
			if len(dismissed) != 2 {
				t.Fatalf("expected 2 dismissed ids, got %v", dismissed)
			}
			if _, ok := dismissed["due-e1"]; !ok {
				t.Error("expected due-e1 to be dismissed")
			}

			other, _ := store.Dismissed(ctx, otherUser, march)
			if len(other) != 0 {
				t.Errorf("expected other user to have no dismissals, got %v", other)
			}

			// Re-activating the same period keeps the set.
			if err := store.Activate(ctx, userID, march); err != nil {
				t.Fatalf("activate: %v", err)
			}
			dismissed, _ = store.Dismissed(ctx, userID, march)
			if len(dismissed) != 2 {
				t.Errorf("expected dismissals to survive same-period activation, got %v", dismissed)
			}

			// Switching periods clears them, also when coming back.
			if err := store.Activate(ctx, userID, april); err != nil {
				t.Fatalf("activate: %v", err)
			}
			if err := store.Activate(ctx, userID, march); err != nil {
				t.Fatalf("activate: %v", err)
			}
			dismissed, _ = store.Dismissed(ctx, userID, march)
			if len(dismissed) != 0 {
				t.Errorf("expected dismissals to be cleared after a period switch, got %v", dismissed)
			}
		})
	}
}

func TestRedisDismissalStore_KeysExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	userID := uuid.New()
	march := entity.NewPeriod(3, 2025)

	if err := store.Activate(ctx, userID, march); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := store.Dismiss(ctx, userID, march, "budget-c1"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	if ttl := mr.TTL(dismissedKey(userID, march.Key())); ttl != time.Hour {
		t.Errorf("expected dismissed set ttl 1h, got %v", ttl)
	}
	if got, _ := mr.Get(periodKey(userID)); got != "2025-03" {
		t.Errorf("expected active period 2025-03, got %q", got)
	}

	mr.FastForward(2 * time.Hour)
	dismissed, err := store.Dismissed(ctx, userID, march)
	if err != nil {
		t.Fatalf("dismissed: %v", err)
	}
	if len(dismissed) != 0 {
		t.Errorf("expected expired dismissals, got %v", dismissed)
	}
}
