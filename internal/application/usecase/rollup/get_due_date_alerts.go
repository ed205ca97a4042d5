package rollup

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/application/usecase/signal"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// GetDueDateAlertsInput represents the input for getting due date alerts.
type GetDueDateAlertsInput struct {
	UserID uuid.UUID
}

// GetDueDateAlertsUseCase handles computing overdue and upcoming expense alerts.
type GetDueDateAlertsUseCase struct {
	entryRepo adapter.EntryRepository
	clock     adapter.Clock
	opts      Options
}

// NewGetDueDateAlertsUseCase creates a new GetDueDateAlertsUseCase instance.
func NewGetDueDateAlertsUseCase(entryRepo adapter.EntryRepository, clock adapter.Clock, opts Options) *GetDueDateAlertsUseCase {
	return &GetDueDateAlertsUseCase{
		entryRepo: entryRepo,
		clock:     clock,
		opts:      opts.withDefaults(),
	}
}

// Execute returns an alert for every unpaid expense that is overdue or due within the window,
// oldest due date first.
func (uc *GetDueDateAlertsUseCase) Execute(ctx context.Context, input GetDueDateAlertsInput) ([]entity.DueDateAlert, error) {
	now := uc.clock.Now().In(uc.opts.Location)
	cutoff := civilDate(now).AddDate(0, 0, uc.opts.DueWindowDays+1)

	entries, err := uc.entryRepo.FindUnpaidWithDueDate(ctx, input.UserID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get unpaid entries: %w", err)
	}

	pending := make([]*entity.Entry, 0, len(entries))
	for _, e := range entries {
		if e.DueDate != nil && !e.IsPaid() && e.Type == entity.EntryTypeExpense {
			pending = append(pending, e)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(*pending[j].DueDate)
	})

	alerts := make([]entity.DueDateAlert, 0, len(pending))
	for _, e := range pending {
		days := daysUntil(now, *e.DueDate, uc.opts.Location)
		dueType := entity.DueTypeUpcoming
		if days < 0 {
			dueType = entity.DueTypeOverdue
			days = -days
		}

		level, ok := signal.DueLevel(dueType, days)
		if !ok {
			continue
		}

		alerts = append(alerts, entity.DueDateAlert{
			ExpenseID:   e.ID.String(),
			Description: e.Description,
			Type:        dueType,
			Level:       level,
			Message:     dueMessage(e.Description, dueType, days),
			Value:       e.Amount,
			Days:        days,
		})
	}

	return alerts, nil
}

func dueMessage(description string, dueType entity.DueType, days int) string {
	switch {
	case dueType == entity.DueTypeOverdue:
		return fmt.Sprintf("%s está vencida há %d dia(s)", description, days)
	case days == 0:
		return fmt.Sprintf("%s vence hoje", description)
	default:
		return fmt.Sprintf("%s vence em %d dia(s)", description, days)
	}
}
