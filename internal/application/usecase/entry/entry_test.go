package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) FindByUserAndType(context.Context, uuid.UUID, entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }

func (r *fakeCategoryRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}

type fakeEntryRepo struct {
	entries map[uuid.UUID]*entity.Entry
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.Entry) error {
	r.entries[e.ID] = e
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEntryRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.EntryWithCategory, error) {
	var out []*entity.EntryWithCategory
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, &entity.EntryWithCategory{Entry: e})
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *entity.Entry) error {
	r.entries[e.ID] = e
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) SumByCategory(context.Context, uuid.UUID, entity.EntryType, time.Time, time.Time) ([]*adapter.CategoryAmount, error) {
	return nil, nil
}

func (r *fakeEntryRepo) SumByType(context.Context, uuid.UUID, time.Time, time.Time) (*adapter.TypeTotals, error) {
	return &adapter.TypeTotals{}, nil
}

func (r *fakeEntryRepo) FindUnpaidWithDueDate(context.Context, uuid.UUID, time.Time) ([]*entity.Entry, error) {
	return nil, nil
}

func TestCreateEntryUseCase(t *testing.T) {
	userID := uuid.New()
	categories := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	food := entity.NewCategory(userID, "Mercado", entity.CategoryTypeExpense)
	_ = categories.Create(context.Background(), food)
	date := time.Date(2025, 3, 10, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	due := date.AddDate(0, 0, 5)

	tests := []struct {
		name     string
		input    CreateEntryInput
		wantCode domainerror.EntryErrorCode
	}{
		{
			name:  "expense with due date",
			input: CreateEntryInput{CategoryID: &food.ID, Description: "Feira", Type: entity.EntryTypeExpense, Amount: decimal.NewFromInt(80), Date: date, DueDate: &due},
		},
		{
			name:  "uncategorized income",
			input: CreateEntryInput{Description: "Freela", Type: entity.EntryTypeIncome, Amount: decimal.NewFromInt(800), Date: date},
		},
		{
			name:     "missing description",
			input:    CreateEntryInput{Type: entity.EntryTypeExpense, Amount: decimal.NewFromInt(1), Date: date},
			wantCode: domainerror.ErrCodeMissingEntryFields,
		},
		{
			name:     "invalid type",
			input:    CreateEntryInput{Description: "x", Type: "transfer", Amount: decimal.NewFromInt(1), Date: date},
			wantCode: domainerror.ErrCodeInvalidEntryType,
		},
		{
			name:     "zero amount",
			input:    CreateEntryInput{Description: "x", Type: entity.EntryTypeExpense, Amount: decimal.Zero, Date: date},
			wantCode: domainerror.ErrCodeInvalidEntryAmount,
		},
		{
			name:     "income with due date",
			input:    CreateEntryInput{Description: "x", Type: entity.EntryTypeIncome, Amount: decimal.NewFromInt(1), Date: date, DueDate: &due},
			wantCode: domainerror.ErrCodeEntryNotPayable,
		},
		{
			name:     "category of another type",
			input:    CreateEntryInput{CategoryID: &food.ID, Description: "x", Type: entity.EntryTypeIncome, Amount: decimal.NewFromInt(1), Date: date},
			wantCode: domainerror.ErrCodeEntryCategoryInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateEntryUseCase(&fakeEntryRepo{entries: map[uuid.UUID]*entity.Entry{}}, categories)
			tt.input.UserID = userID

			out, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
				if !out.Entry.Date.Equal(want) {
					t.Errorf("expected date %v, got %v", want, out.Entry.Date)
				}
				return
			}

			var entryErr *domainerror.EntryError
			if !errors.As(err, &entryErr) {
				t.Fatalf("expected EntryError, got %v", err)
			}
			if entryErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, entryErr.Code)
			}
		})
	}
}

func TestPayEntryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := &fakeEntryRepo{entries: map[uuid.UUID]*entity.Entry{}}
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	bill := entity.NewEntry(userID, nil, "Luz", entity.EntryTypeExpense, decimal.NewFromInt(200), due, &due)
	salary := entity.NewEntry(userID, nil, "Salário", entity.EntryTypeIncome, decimal.NewFromInt(5000), due, nil)
	_ = repo.Create(ctx, bill)
	_ = repo.Create(ctx, salary)

	uc := NewPayEntryUseCase(repo, fixedClock{now: now})

	paid, err := uc.Execute(ctx, bill.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PaidAt == nil || !paid.PaidAt.Equal(now) {
		t.Errorf("expected paid at %v, got %v", now, paid.PaidAt)
	}

	tests := []struct {
		name    string
		entryID uuid.UUID
		userID  uuid.UUID
		want    error
	}{
		{name: "already paid", entryID: bill.ID, userID: userID, want: domainerror.ErrEntryAlreadyPaid},
		{name: "income", entryID: salary.ID, userID: userID, want: domainerror.ErrEntryNotPayable},
		{name: "another user", entryID: bill.ID, userID: uuid.New(), want: domainerror.ErrEntryNotFound},
		{name: "unknown", entryID: uuid.New(), userID: userID, want: domainerror.ErrEntryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.entryID, tt.userID)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestListAndDeleteEntries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := &fakeEntryRepo{entries: map[uuid.UUID]*entity.Entry{}}
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rent := entity.NewEntry(userID, nil, "Aluguel", entity.EntryTypeExpense, decimal.NewFromInt(1500), march, nil)
	_ = repo.Create(ctx, rent)
	_ = repo.Create(ctx, entity.NewEntry(userID, nil, "Salário", entity.EntryTypeIncome, decimal.NewFromInt(5000), march.AddDate(0, 0, 4), nil))
	_ = repo.Create(ctx, entity.NewEntry(userID, nil, "Abril", entity.EntryTypeExpense, decimal.NewFromInt(10), march.AddDate(0, 1, 0), nil))

	list := NewListEntriesUseCase(repo)
	out, err := list.Execute(ctx, userID, entity.NewPeriod(3, 2025))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Entries))
	}
	if !out.TotalIncome.Equal(decimal.NewFromInt(5000)) || !out.TotalExpense.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("unexpected totals: income %s expense %s", out.TotalIncome, out.TotalExpense)
	}

	if _, err := list.Execute(ctx, userID, entity.NewPeriod(3, 1999)); !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}

	if err := NewDeleteEntryUseCase(repo).Execute(ctx, rent.ID, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.entries[rent.ID]; ok {
		t.Error("expected entry to be deleted")
	}
}
