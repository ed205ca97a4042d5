package signal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// DismissAlertInput represents the input for dismissing an alert.
type DismissAlertInput struct {
	UserID  uuid.UUID
	Period  entity.Period
	AlertID string
}

// DismissAlertUseCase handles hiding an alert for the rest of a period.
type DismissAlertUseCase struct {
	dismissals adapter.DismissalStore
}

// NewDismissAlertUseCase creates a new DismissAlertUseCase instance.
func NewDismissAlertUseCase(dismissals adapter.DismissalStore) *DismissAlertUseCase {
	return &DismissAlertUseCase{
		dismissals: dismissals,
	}
}

// Execute records the dismissal. Dismissing the same id twice has no further effect.
func (uc *DismissAlertUseCase) Execute(ctx context.Context, input DismissAlertInput) error {
	if err := validatePeriod(input.Period); err != nil {
		return err
	}

	if !IsAlertID(input.AlertID) {
		return domainerror.NewSignalError(
			domainerror.ErrCodeMissingAlertTarget,
			fmt.Sprintf("alert id must start with %q or %q followed by an identifier", BudgetAlertPrefix, DueAlertPrefix),
			domainerror.ErrMissingAlertID,
		)
	}

	if err := uc.dismissals.Activate(ctx, input.UserID, input.Period); err != nil {
		return fmt.Errorf("failed to activate period: %w", err)
	}
	if err := uc.dismissals.Dismiss(ctx, input.UserID, input.Period, input.AlertID); err != nil {
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}
	return nil
}
