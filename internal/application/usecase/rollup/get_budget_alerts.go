package rollup

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/application/usecase/signal"
	"github.com/finance-tracker/signals/internal/domain/entity"
	"github.com/finance-tracker/signals/internal/domain/valueobject"
)

// GetBudgetAlertsInput represents the input for getting budget alerts.
type GetBudgetAlertsInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// GetBudgetAlertsUseCase handles computing per-category budget alerts.
type GetBudgetAlertsUseCase struct {
	budgetRepo adapter.BudgetRepository
	entryRepo  adapter.EntryRepository
}

// NewGetBudgetAlertsUseCase creates a new GetBudgetAlertsUseCase instance.
func NewGetBudgetAlertsUseCase(budgetRepo adapter.BudgetRepository, entryRepo adapter.EntryRepository) *GetBudgetAlertsUseCase {
	return &GetBudgetAlertsUseCase{
		budgetRepo: budgetRepo,
		entryRepo:  entryRepo,
	}
}

// Execute compares spending against each expense budget of the period and returns an
// alert for every category at or above the warning threshold.
func (uc *GetBudgetAlertsUseCase) Execute(ctx context.Context, input GetBudgetAlertsInput) ([]entity.BudgetAlert, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	start, end := periodRange(input.Period)
	spentByCategory, err := uc.entryRepo.SumByCategory(ctx, input.UserID, entity.EntryTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending: %w", err)
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(spentByCategory))
	for _, s := range spentByCategory {
		if s.CategoryID != nil {
			spent[*s.CategoryID] = s.Amount
		}
	}

	alerts := make([]entity.BudgetAlert, 0)
	for _, b := range budgets {
		if b.Category == nil || b.Category.Type != entity.CategoryTypeExpense {
			continue
		}
		if !b.Budget.Planned.IsPositive() {
			continue
		}

		amount, ok := spent[b.Budget.CategoryID]
		if !ok {
			amount = decimal.Zero
		}
		// Thresholds apply to the exact ratio; rounding is for display only.
		ratio := signal.Percentage(amount, b.Budget.Planned)
		level, ok := signal.BudgetLevel(ratio)
		if !ok {
			continue
		}
		percentage := roundOne(ratio)

		alerts = append(alerts, entity.BudgetAlert{
			CategoryID:   b.Budget.CategoryID.String(),
			CategoryName: b.Category.Name,
			Level:        level,
			Message:      budgetMessage(b.Category.Name, level, percentage),
			Planned:      b.Budget.Planned,
			Spent:        amount,
			Percentage:   percentage,
		})
	}

	return alerts, nil
}

func budgetMessage(category string, level entity.Level, percentage float64) string {
	if level == entity.LevelDanger {
		return fmt.Sprintf("Orçamento de %s excedido (%s)", category, valueobject.FormatPercent(percentage, 0))
	}
	return fmt.Sprintf("Orçamento de %s atingiu %s", category, valueobject.FormatPercent(percentage, 0))
}
