package signal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

type fakeSource struct {
	mu sync.Mutex

	budget    map[entity.Period][]entity.BudgetAlert
	due       []entity.DueDateAlert
	trends    *entity.TrendReport
	reports   map[entity.EntryType][]entity.CategoryReportRow
	budgetErr error
	dueErr    error
	trendsErr error
	reportErr map[entity.EntryType]error

	// blockPeriod makes BudgetAlerts for that period wait until its context is done.
	blockPeriod *entity.Period
	started     chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		budget:    map[entity.Period][]entity.BudgetAlert{},
		reports:   map[entity.EntryType][]entity.CategoryReportRow{},
		reportErr: map[entity.EntryType]error{},
	}
}

func (f *fakeSource) BudgetAlerts(ctx context.Context, _ uuid.UUID, period entity.Period) ([]entity.BudgetAlert, error) {
	f.mu.Lock()
	block := f.blockPeriod != nil && *f.blockPeriod == period
	alerts, err := f.budget[period], f.budgetErr
	f.mu.Unlock()

	if block {
		if f.started != nil {
			f.started <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return alerts, err
}

func (f *fakeSource) DueDateAlerts(_ context.Context, _ uuid.UUID) ([]entity.DueDateAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.due, f.dueErr
}

func (f *fakeSource) Trends(_ context.Context, _ uuid.UUID, _ entity.Period) (*entity.TrendReport, error) {
	return f.trends, f.trendsErr
}

func (f *fakeSource) CategoryReport(_ context.Context, _ uuid.UUID, _ entity.Period, kind entity.EntryType) ([]entity.CategoryReportRow, error) {
	return f.reports[kind], f.reportErr[kind]
}

func (f *fakeSource) set(fn func(f *fakeSource)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

type fakeDismissals struct {
	mu        sync.Mutex
	active    map[uuid.UUID]entity.Period
	dismissed map[uuid.UUID]map[string]struct{}
}

func newFakeDismissals() *fakeDismissals {
	return &fakeDismissals{
		active:    map[uuid.UUID]entity.Period{},
		dismissed: map[uuid.UUID]map[string]struct{}{},
	}
}

func (f *fakeDismissals) Activate(_ context.Context, userID uuid.UUID, period entity.Period) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if current, ok := f.active[userID]; ok && current != period {
		delete(f.dismissed, userID)
	}
	f.active[userID] = period
	return nil
}

func (f *fakeDismissals) Dismiss(_ context.Context, userID uuid.UUID, _ entity.Period, alertID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dismissed[userID] == nil {
		f.dismissed[userID] = map[string]struct{}{}
	}
	f.dismissed[userID][alertID] = struct{}{}
	return nil
}

func (f *fakeDismissals) Dismissed(_ context.Context, userID uuid.UUID, period entity.Period) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]struct{}{}
	if f.active[userID] != period {
		return out, nil
	}
	for id := range f.dismissed[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}
