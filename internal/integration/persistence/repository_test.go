package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))
	userID := uuid.New()

	food := entity.NewCategory(userID, "Alimentação", entity.CategoryTypeExpense)
	salary := entity.NewCategory(userID, "Salário", entity.CategoryTypeIncome)
	for _, c := range []*entity.Category{food, salary} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	t.Run("find by user is ordered by name", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 || categories[0].Name != "Alimentação" {
			t.Fatalf("unexpected categories: %+v", categories)
		}
	})

	t.Run("find by type", func(t *testing.T) {
		categories, err := repo.FindByUserAndType(ctx, userID, entity.CategoryTypeIncome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 1 || categories[0].ID != salary.ID {
			t.Fatalf("unexpected categories: %+v", categories)
		}
	})

	t.Run("exists ignores case", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndUser(ctx, "salário", userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected category to exist")
		}
		exists, _ = repo.ExistsByNameAndUser(ctx, "Salário", uuid.New())
		if exists {
			t.Error("expected category of another user to be ignored")
		}
	})

	t.Run("deleted category is not found", func(t *testing.T) {
		if err := repo.Delete(ctx, food.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, err := repo.FindByID(ctx, food.ID)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCreditCardRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditCardRepository(newTestDB(t))
	userID := uuid.New()

	card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 3, 10)
	if err := repo.Create(ctx, card); err != nil {
		t.Fatalf("create: %v", err)
	}

	card.Limit = decimal.NewFromInt(7500)
	if err := repo.Update(ctx, card); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !found.Limit.Equal(decimal.NewFromInt(7500)) || found.DueDay != 10 {
		t.Errorf("unexpected card: %+v", found)
	}

	if err := repo.Delete(ctx, card.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cards, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("find by user: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected no cards, got %d", len(cards))
	}
}

func TestInvestmentRepository_FindByUserAndPeriod(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewInvestmentRepository(db)
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	stocks := entity.NewCategory(userID, "Ações", entity.CategoryTypeInvestment)
	if err := categories.Create(ctx, stocks); err != nil {
		t.Fatalf("create category: %v", err)
	}

	withCategory := entity.NewInvestment(userID, &stocks.ID, "PETR4", period)
	withCategory.Contribution = decimal.NewFromInt(1000)
	orphan := entity.NewInvestment(userID, nil, "Tesouro", period)
	other := entity.NewInvestment(userID, nil, "Abril", entity.NewPeriod(4, 2025))
	for _, inv := range []*entity.Investment{withCategory, orphan, other} {
		if err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("create investment: %v", err)
		}
	}

	items, err := repo.FindByUserAndPeriod(ctx, userID, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(items))
	}

	names := map[string]string{}
	for _, item := range items {
		names[item.Investment.Description] = item.CategoryName()
	}
	if names["PETR4"] != "Ações" {
		t.Errorf("expected category Ações, got %q", names["PETR4"])
	}
	if names["Tesouro"] != entity.UncategorizedLabel {
		t.Errorf("expected uncategorized label, got %q", names["Tesouro"])
	}
}

func TestBudgetRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewBudgetRepository(db)
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	food := entity.NewCategory(userID, "Alimentação", entity.CategoryTypeExpense)
	if err := categories.Create(ctx, food); err != nil {
		t.Fatalf("create category: %v", err)
	}

	first := entity.NewBudget(userID, food.ID, decimal.NewFromInt(500), period)
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := entity.NewBudget(userID, food.ID, decimal.NewFromInt(800), period)
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected upsert to reuse id %s, got %s", first.ID, second.ID)
	}

	items, err := repo.FindByUserAndPeriod(ctx, userID, period)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(items))
	}
	if !items[0].Budget.Planned.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected planned 800, got %s", items[0].Budget.Planned)
	}
	if items[0].Category.Name != "Alimentação" {
		t.Errorf("expected category name, got %q", items[0].Category.Name)
	}

	if err := categories.Delete(ctx, food.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	items, err = repo.FindByUserAndPeriod(ctx, userID, period)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected budgets of deleted categories to be skipped, got %d", len(items))
	}
}

func TestEntryRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewEntryRepository(db)
	userID := uuid.New()

	food := entity.NewCategory(userID, "Alimentação", entity.CategoryTypeExpense)
	if err := categories.Create(ctx, food); err != nil {
		t.Fatalf("create category: %v", err)
	}

	entries := []*entity.Entry{
		entity.NewEntry(userID, &food.ID, "Mercado", entity.EntryTypeExpense, decimal.NewFromFloat(100.5), day(2025, 3, 5), nil),
		entity.NewEntry(userID, &food.ID, "Feira", entity.EntryTypeExpense, decimal.NewFromFloat(50.25), day(2025, 3, 20), nil),
		entity.NewEntry(userID, nil, "Avulso", entity.EntryTypeExpense, decimal.NewFromInt(30), day(2025, 3, 31), nil),
		entity.NewEntry(userID, nil, "Salário", entity.EntryTypeIncome, decimal.NewFromInt(5000), day(2025, 3, 1), nil),
		entity.NewEntry(userID, &food.ID, "Abril", entity.EntryTypeExpense, decimal.NewFromInt(999), day(2025, 4, 1), nil),
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	start, end := day(2025, 3, 1), day(2025, 4, 1)

	t.Run("sum by category", func(t *testing.T) {
		amounts, err := repo.SumByCategory(ctx, userID, entity.EntryTypeExpense, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(amounts) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(amounts))
		}
		for _, a := range amounts {
			switch {
			case a.CategoryID == nil:
				if !a.Amount.Equal(decimal.NewFromInt(30)) {
					t.Errorf("expected uncategorized 30, got %s", a.Amount)
				}
			case *a.CategoryID == food.ID:
				if !a.Amount.Equal(decimal.NewFromFloat(150.75)) {
					t.Errorf("expected food 150.75, got %s", a.Amount)
				}
				if a.CategoryName != "Alimentação" {
					t.Errorf("expected category name, got %q", a.CategoryName)
				}
			default:
				t.Errorf("unexpected category %v", a.CategoryID)
			}
		}
	})

	t.Run("sum by type", func(t *testing.T) {
		totals, err := repo.SumByType(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected income 5000, got %s", totals.Income)
		}
		if !totals.Expense.Equal(decimal.NewFromFloat(180.75)) {
			t.Errorf("expected expense 180.75, got %s", totals.Expense)
		}
	})

	t.Run("range listing", func(t *testing.T) {
		listed, err := repo.FindByUserAndRange(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listed) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(listed))
		}
		if listed[0].Entry.Description != "Avulso" {
			t.Errorf("expected newest entry first, got %q", listed[0].Entry.Description)
		}
	})
}

func TestEntryRepository_FindUnpaidWithDueDate(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))
	userID := uuid.New()

	due := func(d time.Time) *time.Time { return &d }
	paidAt := day(2025, 3, 2)

	later := entity.NewEntry(userID, nil, "Aluguel", entity.EntryTypeExpense, decimal.NewFromInt(1500), day(2025, 3, 1), due(day(2025, 3, 12)))
	sooner := entity.NewEntry(userID, nil, "Luz", entity.EntryTypeExpense, decimal.NewFromInt(200), day(2025, 3, 1), due(day(2025, 3, 8)))
	paid := entity.NewEntry(userID, nil, "Água", entity.EntryTypeExpense, decimal.NewFromInt(80), day(2025, 3, 1), due(day(2025, 3, 9)))
	paid.PaidAt = &paidAt
	noDue := entity.NewEntry(userID, nil, "Padaria", entity.EntryTypeExpense, decimal.NewFromInt(20), day(2025, 3, 1), nil)
	outside := entity.NewEntry(userID, nil, "Seguro", entity.EntryTypeExpense, decimal.NewFromInt(300), day(2025, 3, 1), due(day(2025, 4, 30)))

	for _, e := range []*entity.Entry{later, sooner, paid, noDue, outside} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	unpaid, err := repo.FindUnpaidWithDueDate(ctx, userID, day(2025, 3, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unpaid) != 2 {
		t.Fatalf("expected 2 unpaid entries, got %d", len(unpaid))
	}
	if unpaid[0].ID != sooner.ID || unpaid[1].ID != later.ID {
		t.Errorf("expected entries ordered by due date, got %s then %s", unpaid[0].Description, unpaid[1].Description)
	}
}
