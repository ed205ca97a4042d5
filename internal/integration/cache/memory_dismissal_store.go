package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

type userDismissals struct {
	period entity.Period
	ids    map[string]struct{}
}

// memoryDismissalStore implements adapter.DismissalStore in process memory.
// It is used when Redis is disabled; state is lost on restart.
type memoryDismissalStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*userDismissals
}

// NewMemoryDismissalStore creates an in-memory DismissalStore.
func NewMemoryDismissalStore() adapter.DismissalStore {
	return &memoryDismissalStore{
		users: make(map[uuid.UUID]*userDismissals),
	}
}

func (s *memoryDismissalStore) Activate(_ context.Context, userID uuid.UUID, period entity.Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activate(userID, period)
	return nil
}

// activate must be called with the lock held.
func (s *memoryDismissalStore) activate(userID uuid.UUID, period entity.Period) *userDismissals {
	state, ok := s.users[userID]
	if !ok || state.period != period {
		state = &userDismissals{period: period, ids: make(map[string]struct{})}
		s.users[userID] = state
	}
	return state
}

func (s *memoryDismissalStore) Dismiss(_ context.Context, userID uuid.UUID, period entity.Period, alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activate(userID, period).ids[alertID] = struct{}{}
	return nil
}

func (s *memoryDismissalStore) Dismissed(_ context.Context, userID uuid.UUID, period entity.Period) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dismissed := make(map[string]struct{})
	state, ok := s.users[userID]
	if !ok || state.period != period {
		return dismissed, nil
	}
	for id := range state.ids {
		dismissed[id] = struct{}{}
	}
	return dismissed, nil
}
