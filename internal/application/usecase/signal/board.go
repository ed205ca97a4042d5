package signal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// BoardSnapshot is the state of a board after a refresh.
type BoardSnapshot struct {
	Period entity.Period
	Budget []entity.BudgetAlert
	Due    []entity.DueDateAlert
	// Unavailable lists the pieces whose fetch failed during the refresh.
	Unavailable []entity.AlertSource
}

// Board holds one user's latest budget and due-date rollups.
// Each refresh gets a generation number; results of an older generation are discarded.
type Board struct {
	source adapter.RollupSource
	userID uuid.UUID

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	period     entity.Period
	budget     []entity.BudgetAlert
	due        []entity.DueDateAlert

	// lastUsed is guarded by the owning BoardSessions lock.
	lastUsed time.Time
}

// NewBoard creates an empty Board for a user.
func NewBoard(source adapter.RollupSource, userID uuid.UUID) *Board {
	return &Board{
		source: source,
		userID: userID,
	}
}

// Refresh fetches both rollups for period concurrently and applies each one
// independently. A failed fetch is logged and leaves its piece unchanged; switching
// to another period starts from empty pieces. Starting a refresh cancels the one in
// flight, which then returns ErrRefreshSuperseded.
func (b *Board) Refresh(ctx context.Context, period entity.Period) (*BoardSnapshot, error) {
	refreshCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	b.mu.Lock()
	b.generation++
	gen := b.generation
	if b.cancel != nil {
		b.cancel()
	}
	b.cancel = cancel
	if b.period != period {
		b.period = period
		b.budget = nil
		b.due = nil
	}
	b.mu.Unlock()

	logger := slog.Default().With(
		"userID", b.userID.String(),
		"period", period.Key(),
		"generation", gen,
	)

	var (
		wg          sync.WaitGroup
		budgetErr   error
		dueErr      error
		budgetFresh []entity.BudgetAlert
		dueFresh    []entity.DueDateAlert
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		budgetFresh, budgetErr = b.source.BudgetAlerts(refreshCtx, b.userID, period)
		if budgetErr != nil {
			logger.Warn("Failed to fetch budget alerts", "error", budgetErr)
			return
		}
		b.apply(gen, func() { b.budget = budgetFresh })
	}()
	go func() {
		defer wg.Done()
		dueFresh, dueErr = b.source.DueDateAlerts(refreshCtx, b.userID)
		if dueErr != nil {
			logger.Warn("Failed to fetch due date alerts", "error", dueErr)
			return
		}
		b.apply(gen, func() { b.due = dueFresh })
	}()
	wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.generation != gen {
		logger.Info("Discarding superseded board refresh")
		return nil, domainerror.NewSignalError(
			domainerror.ErrCodeRefreshSuperseded,
			"a newer refresh replaced this one",
			domainerror.ErrRefreshSuperseded,
		)
	}
	b.cancel = nil

	snapshot := &BoardSnapshot{
		Period:      period,
		Budget:      append([]entity.BudgetAlert(nil), b.budget...),
		Due:         append([]entity.DueDateAlert(nil), b.due...),
		Unavailable: []entity.AlertSource{},
	}
	if budgetErr != nil {
		snapshot.Unavailable = append(snapshot.Unavailable, entity.AlertSourceBudget)
	}
	if dueErr != nil {
		snapshot.Unavailable = append(snapshot.Unavailable, entity.AlertSourceDue)
	}
	return snapshot, nil
}

// apply runs set under the board lock if gen is still the current generation.
func (b *Board) apply(gen uint64, set func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.generation != gen {
		return
	}
	set()
}

// BoardSessions keeps one Board per user.
type BoardSessions struct {
	source adapter.RollupSource

	mu     sync.Mutex
	boards map[uuid.UUID]*Board
}

// NewBoardSessions creates a new BoardSessions instance.
func NewBoardSessions(source adapter.RollupSource) *BoardSessions {
	return &BoardSessions{
		source: source,
		boards: make(map[uuid.UUID]*Board),
	}
}

// For returns the user's board, creating it on first use.
func (s *BoardSessions) For(userID uuid.UUID) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[userID]
	if !ok {
		board = NewBoard(s.source, userID)
		s.boards[userID] = board
	}
	board.lastUsed = time.Now()
	return board
}

// EvictIdle drops boards not used since cutoff and returns how many were dropped.
// A board with a refresh in flight is kept.
func (s *BoardSessions) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for userID, board := range s.boards {
		if !board.lastUsed.Before(cutoff) || board.refreshing() {
			continue
		}
		delete(s.boards, userID)
		evicted++
	}
	return evicted
}

// Len returns the number of boards held.
func (s *BoardSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

func (b *Board) refreshing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}
