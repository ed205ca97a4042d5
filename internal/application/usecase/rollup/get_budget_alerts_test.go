package rollup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

func TestGetBudgetAlertsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	food := entity.NewCategory(userID, "Alimentação", entity.CategoryTypeExpense)
	fun := entity.NewCategory(userID, "Lazer", entity.CategoryTypeExpense)
	home := entity.NewCategory(userID, "Moradia", entity.CategoryTypeExpense)
	salary := entity.NewCategory(userID, "Salário", entity.CategoryTypeIncome)

	budgets := &fakeBudgetRepo{budgets: []*entity.BudgetWithCategory{
		{Budget: entity.NewBudget(userID, food.ID, decimal.NewFromInt(500), period), Category: food},
		{Budget: entity.NewBudget(userID, fun.ID, decimal.NewFromInt(200), period), Category: fun},
		{Budget: entity.NewBudget(userID, home.ID, decimal.NewFromInt(1000), period), Category: home},
		{Budget: entity.NewBudget(userID, salary.ID, decimal.NewFromInt(100), period), Category: salary},
	}}

	entries := newFakeEntryRepo(food, fun, home, salary)
	entries.entries = []*entity.Entry{
		expense(userID, food, 520, date(2025, time.March, 10)),
		expense(userID, fun, 170, date(2025, time.March, 2)),
		expense(userID, home, 300, date(2025, time.March, 5)),
		expense(userID, food, 999, date(2025, time.February, 28)),
		income(userID, salary, 5000, date(2025, time.March, 1)),
	}

	alerts, err := NewGetBudgetAlertsUseCase(budgets, entries).Execute(context.Background(), GetBudgetAlertsInput{UserID: userID, Period: period})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(alerts) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(alerts), alerts)
	}

	byID := map[string]entity.BudgetAlert{}
	for _, a := range alerts {
		byID[a.CategoryID] = a
	}

	foodAlert := byID[food.ID.String()]
	if foodAlert.Level != entity.LevelDanger || foodAlert.Percentage != 104 || !foodAlert.Spent.Equal(decimal.NewFromInt(520)) {
		t.Errorf("food alert = %+v", foodAlert)
	}
	if foodAlert.Message != "Orçamento de Alimentação excedido (104%)" {
		t.Errorf("food message = %q", foodAlert.Message)
	}

	funAlert := byID[fun.ID.String()]
	if funAlert.Level != entity.LevelWarning || funAlert.Percentage != 85 {
		t.Errorf("fun alert = %+v", funAlert)
	}
	if _, ok := byID[home.ID.String()]; ok {
		t.Error("category at 30% should not alert")
	}
}

func TestGetBudgetAlertsUseCase_ClassifiesOnExactRatio(t *testing.T) {
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)

	tests := []struct {
		name        string
		planned     int64
		spent       int64
		wantLevel   entity.Level
		wantPct     float64
		wantMessage string
	}{
		{
			name:        "just under plan rounds to 100 but stays a warning",
			planned:     10000,
			spent:       9996,
			wantLevel:   entity.LevelWarning,
			wantPct:     100,
			wantMessage: "Orçamento de Mercado atingiu 100%",
		},
		{
			name:        "exactly at plan is exceeded",
			planned:     10000,
			spent:       10000,
			wantLevel:   entity.LevelDanger,
			wantPct:     100,
			wantMessage: "Orçamento de Mercado excedido (100%)",
		},
		{
			name:      "just under warning threshold does not alert",
			planned:   10000,
			spent:     7996,
			wantLevel: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market := entity.NewCategory(userID, "Mercado", entity.CategoryTypeExpense)
			budgets := &fakeBudgetRepo{budgets: []*entity.BudgetWithCategory{
				{Budget: entity.NewBudget(userID, market.ID, decimal.NewFromInt(tt.planned), period), Category: market},
			}}
			entries := newFakeEntryRepo(market)
			entries.entries = []*entity.Entry{
				expense(userID, market, tt.spent, date(2025, time.March, 10)),
			}

			alerts, err := NewGetBudgetAlertsUseCase(budgets, entries).Execute(context.Background(), GetBudgetAlertsInput{UserID: userID, Period: period})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantLevel == "" {
				if len(alerts) != 0 {
					t.Fatalf("expected no alert, got %+v", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("len = %d, want 1: %+v", len(alerts), alerts)
			}
			if alerts[0].Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", alerts[0].Level, tt.wantLevel)
			}
			if alerts[0].Percentage != tt.wantPct {
				t.Errorf("percentage = %v, want %v", alerts[0].Percentage, tt.wantPct)
			}
			if alerts[0].Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", alerts[0].Message, tt.wantMessage)
			}
		})
	}
}
