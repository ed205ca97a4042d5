package rollup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

func TestGetCategoryReportUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	food := entity.NewCategory(userID, "Alimentação", entity.CategoryTypeExpense)
	fun := entity.NewCategory(userID, "Lazer", entity.CategoryTypeExpense)
	salary := entity.NewCategory(userID, "Salário", entity.CategoryTypeIncome)

	budgets := &fakeBudgetRepo{budgets: []*entity.BudgetWithCategory{
		{Budget: entity.NewBudget(userID, food.ID, decimal.NewFromInt(500), period), Category: food},
		{Budget: entity.NewBudget(userID, salary.ID, decimal.NewFromInt(5000), period), Category: salary},
	}}
	entries := newFakeEntryRepo(food, fun, salary)
	entries.entries = []*entity.Entry{
		expense(userID, food, 450, date(2025, time.March, 3)),
		expense(userID, fun, 80, date(2025, time.March, 4)),
		expense(userID, nil, 20, date(2025, time.March, 4)),
		income(userID, salary, 5200, date(2025, time.March, 1)),
	}

	uc := NewGetCategoryReportUseCase(budgets, entries)

	rows, err := uc.Execute(context.Background(), GetCategoryReportInput{UserID: userID, Period: period, Kind: entity.EntryTypeExpense})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %+v, want 3", rows)
	}

	if rows[0].CategoryName != "Alimentação" || rows[0].Percentage != 90 || !rows[0].Planned.Equal(decimal.NewFromInt(500)) {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].CategoryName != "Lazer" || rows[1].Percentage != 0 || !rows[1].Planned.IsZero() {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].CategoryName != entity.UncategorizedLabel || !rows[2].Realized.Equal(decimal.NewFromInt(20)) {
		t.Errorf("row 2 = %+v", rows[2])
	}

	incomeRows, err := uc.Execute(context.Background(), GetCategoryReportInput{UserID: userID, Period: period, Kind: entity.EntryTypeIncome})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(incomeRows) != 1 || incomeRows[0].Percentage != 104 {
		t.Errorf("income rows = %+v", incomeRows)
	}
}

func TestGetCategoryReportUseCase_InvalidKind(t *testing.T) {
	uc := NewGetCategoryReportUseCase(&fakeBudgetRepo{}, newFakeEntryRepo())

	_, err := uc.Execute(context.Background(), GetCategoryReportInput{UserID: uuid.New(), Period: entity.NewPeriod(3, 2025), Kind: "investment"})

	var sigErr *domainerror.SignalError
	if !errors.As(err, &sigErr) || sigErr.Code != domainerror.ErrCodeInvalidReportType {
		t.Errorf("expected invalid report type, got %v", err)
	}
}

func TestGetCategoryReportUseCase_OrdersNameTiesByCategoryID(t *testing.T) {
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	namesake := entity.NewCategory(userID, entity.UncategorizedLabel, entity.CategoryTypeExpense)
	upper := entity.NewCategory(userID, "MERCADO", entity.CategoryTypeExpense)
	lower := entity.NewCategory(userID, "mercado", entity.CategoryTypeExpense)

	entries := newFakeEntryRepo(namesake, upper, lower)
	entries.entries = []*entity.Entry{
		expense(userID, namesake, 10, date(2025, time.March, 2)),
		expense(userID, nil, 20, date(2025, time.March, 3)),
		expense(userID, upper, 30, date(2025, time.March, 4)),
		expense(userID, lower, 40, date(2025, time.March, 5)),
	}

	wantMarket := []string{upper.ID.String(), lower.ID.String()}
	if wantMarket[0] > wantMarket[1] {
		wantMarket[0], wantMarket[1] = wantMarket[1], wantMarket[0]
	}
	want := []string{wantMarket[0], wantMarket[1], "", namesake.ID.String()}

	uc := NewGetCategoryReportUseCase(&fakeBudgetRepo{}, entries)

	for i := 0; i < 20; i++ {
		rows, err := uc.Execute(context.Background(), GetCategoryReportInput{UserID: userID, Period: period, Kind: entity.EntryTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != len(want) {
			t.Fatalf("rows = %+v, want %d", rows, len(want))
		}
		for j, id := range want {
			if rows[j].CategoryID != id {
				t.Fatalf("call %d: row %d id = %q, want %q (rows = %+v)", i, j, rows[j].CategoryID, id, rows)
			}
		}
	}
}
