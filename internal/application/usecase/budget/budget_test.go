package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

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

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func (r *fakeBudgetRepo) Upsert(_ context.Context, b *entity.Budget) error {
	for _, existing := range r.budgets {
		if existing.UserID == b.UserID && existing.CategoryID == b.CategoryID && existing.Period() == b.Period() {
			b.ID = existing.ID
		}
	}
	r.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	b, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return b, nil
}

func (r *fakeBudgetRepo) FindByUserAndPeriod(_ context.Context, userID uuid.UUID, period entity.Period) ([]*entity.BudgetWithCategory, error) {
	var out []*entity.BudgetWithCategory
	for _, b := range r.budgets {
		if b.UserID == userID && b.Period() == period {
			out = append(out, &entity.BudgetWithCategory{Budget: b})
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.budgets, id)
	return nil
}

func TestUpsertBudgetUseCase(t *testing.T) {
	userID := uuid.New()
	categories := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	food := entity.NewCategory(userID, "Mercado", entity.CategoryTypeExpense)
	stocks := entity.NewCategory(userID, "Ações", entity.CategoryTypeInvestment)
	_ = categories.Create(context.Background(), food)
	_ = categories.Create(context.Background(), stocks)
	march := entity.NewPeriod(3, 2025)

	tests := []struct {
		name     string
		input    UpsertBudgetInput
		wantCode domainerror.BudgetErrorCode
	}{
		{
			name:  "zero planned is allowed",
			input: UpsertBudgetInput{CategoryID: food.ID, Planned: decimal.Zero, Period: march},
		},
		{
			name:     "negative planned",
			input:    UpsertBudgetInput{CategoryID: food.ID, Planned: decimal.NewFromInt(-1), Period: march},
			wantCode: domainerror.ErrCodeNegativePlannedAmount,
		},
		{
			name:     "investment category",
			input:    UpsertBudgetInput{CategoryID: stocks.ID, Planned: decimal.NewFromInt(100), Period: march},
			wantCode: domainerror.ErrCodeBudgetCategoryInvalid,
		},
		{
			name:     "unknown category",
			input:    UpsertBudgetInput{CategoryID: uuid.New(), Planned: decimal.NewFromInt(100), Period: march},
			wantCode: domainerror.ErrCodeBudgetCategoryInvalid,
		},
		{
			name:     "invalid period",
			input:    UpsertBudgetInput{CategoryID: food.ID, Planned: decimal.NewFromInt(100), Period: entity.NewPeriod(0, 2025)},
			wantCode: domainerror.ErrCodeBudgetInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUpsertBudgetUseCase(&fakeBudgetRepo{budgets: map[uuid.UUID]*entity.Budget{}}, categories)
			tt.input.UserID = userID

			_, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected BudgetError, got %v", err)
			}
			if budgetErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, budgetErr.Code)
			}
		})
	}
}

func TestUpsertBudgetUseCase_ReplacesPlanned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categories := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	food := entity.NewCategory(userID, "Mercado", entity.CategoryTypeExpense)
	_ = categories.Create(ctx, food)
	budgets := &fakeBudgetRepo{budgets: map[uuid.UUID]*entity.Budget{}}
	march := entity.NewPeriod(3, 2025)

	uc := NewUpsertBudgetUseCase(budgets, categories)
	first, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: food.ID, Planned: decimal.NewFromInt(500), Period: march})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: food.ID, Planned: decimal.NewFromInt(700), Period: march})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.Budget.ID != second.Budget.ID {
		t.Error("expected the same budget to be updated")
	}

	listed, err := NewListBudgetsUseCase(budgets).Execute(ctx, userID, march)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || !listed[0].Budget.Planned.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected budgets: %+v", listed)
	}

	del := NewDeleteBudgetUseCase(budgets)
	if err := del.Execute(ctx, first.Budget.ID, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected not found for another user, got %v", err)
	}
	if err := del.Execute(ctx, first.Budget.ID, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
