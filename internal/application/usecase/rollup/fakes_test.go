package rollup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeBudgetRepo struct {
	budgets []*entity.BudgetWithCategory
	err     error
}

func (r *fakeBudgetRepo) Upsert(context.Context, *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) FindByUserAndPeriod(_ context.Context, userID uuid.UUID, period entity.Period) ([]*entity.BudgetWithCategory, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.BudgetWithCategory
	for _, b := range r.budgets {
		if b.Budget.UserID == userID && b.Budget.Period() == period {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeEntryRepo struct {
	entries    []*entity.Entry
	categories map[uuid.UUID]*entity.Category
}

func newFakeEntryRepo(categories ...*entity.Category) *fakeEntryRepo {
	repo := &fakeEntryRepo{categories: map[uuid.UUID]*entity.Category{}}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeEntryRepo) FindByID(context.Context, uuid.UUID) (*entity.Entry, error) { return nil, nil }

func (r *fakeEntryRepo) FindByUserAndRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.EntryWithCategory, error) {
	return nil, nil
}

func (r *fakeEntryRepo) Update(context.Context, *entity.Entry) error { return nil }

func (r *fakeEntryRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *fakeEntryRepo) inRange(e *entity.Entry, userID uuid.UUID, start, end time.Time) bool {
	return e.UserID == userID && !e.Date.Before(start) && e.Date.Before(end)
}

func (r *fakeEntryRepo) SumByCategory(_ context.Context, userID uuid.UUID, entryType entity.EntryType, start, end time.Time) ([]*adapter.CategoryAmount, error) {
	totals := map[uuid.UUID]*adapter.CategoryAmount{}
	var uncategorized *adapter.CategoryAmount
	var order []*adapter.CategoryAmount

	for _, e := range r.entries {
		if e.Type != entryType || !r.inRange(e, userID, start, end) {
			continue
		}
		if e.CategoryID == nil {
			if uncategorized == nil {
				uncategorized = &adapter.CategoryAmount{Amount: decimal.Zero}
				order = append(order, uncategorized)
			}
			uncategorized.Amount = uncategorized.Amount.Add(e.Amount)
			continue
		}
		total, ok := totals[*e.CategoryID]
		if !ok {
			id := *e.CategoryID
			total = &adapter.CategoryAmount{CategoryID: &id, Amount: decimal.Zero}
			if c, ok := r.categories[id]; ok {
				total.CategoryName = c.Name
			}
			totals[id] = total
			order = append(order, total)
		}
		total.Amount = total.Amount.Add(e.Amount)
	}
	return order, nil
}

func (r *fakeEntryRepo) SumByType(_ context.Context, userID uuid.UUID, start, end time.Time) (*adapter.TypeTotals, error) {
	totals := &adapter.TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, e := range r.entries {
		if !r.inRange(e, userID, start, end) {
			continue
		}
		if e.Type == entity.EntryTypeIncome {
			totals.Income = totals.Income.Add(e.Amount)
		} else {
			totals.Expense = totals.Expense.Add(e.Amount)
		}
	}
	return totals, nil
}

func (r *fakeEntryRepo) FindUnpaidWithDueDate(_ context.Context, userID uuid.UUID, before time.Time) ([]*entity.Entry, error) {
	var out []*entity.Entry
	for _, e := range r.entries {
		if e.UserID == userID && e.DueDate != nil && e.PaidAt == nil && e.DueDate.Before(before) {
			out = append(out, e)
		}
	}
	return out, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func expense(userID uuid.UUID, category *entity.Category, amount int64, on time.Time) *entity.Entry {
	var categoryID *uuid.UUID
	if category != nil {
		id := category.ID
		categoryID = &id
	}
	return entity.NewEntry(userID, categoryID, "Despesa", entity.EntryTypeExpense, decimal.NewFromInt(amount), on, nil)
}

func income(userID uuid.UUID, category *entity.Category, amount int64, on time.Time) *entity.Entry {
	e := expense(userID, category, amount, on)
	e.Type = entity.EntryTypeIncome
	return e
}
