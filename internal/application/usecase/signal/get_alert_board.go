package signal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// GetAlertBoardInput represents the input for getting the alert board.
type GetAlertBoardInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// GetAlertBoardOutput represents the output of getting the alert board.
type GetAlertBoardOutput struct {
	Period      entity.Period        `json:"period"`
	PeriodLabel string               `json:"period_label"`
	Alerts      []entity.Alert       `json:"alerts"`
	Counts      BandCounts           `json:"counts"`
	Unavailable []entity.AlertSource `json:"unavailable"`
}

// GetAlertBoardUseCase handles building the ordered alert list for a period.
type GetAlertBoardUseCase struct {
	sessions   *BoardSessions
	dismissals adapter.DismissalStore
}

// NewGetAlertBoardUseCase creates a new GetAlertBoardUseCase instance.
func NewGetAlertBoardUseCase(sessions *BoardSessions, dismissals adapter.DismissalStore) *GetAlertBoardUseCase {
	return &GetAlertBoardUseCase{
		sessions:   sessions,
		dismissals: dismissals,
	}
}

// Execute refreshes the user's board for the period and returns its visible alerts.
func (uc *GetAlertBoardUseCase) Execute(ctx context.Context, input GetAlertBoardInput) (*GetAlertBoardOutput, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	if err := uc.dismissals.Activate(ctx, input.UserID, input.Period); err != nil {
		slog.Warn("Failed to activate dismissal period",
			"userID", input.UserID.String(),
			"period", input.Period.Key(),
			"error", err,
		)
	}

	snapshot, err := uc.sessions.For(input.UserID).Refresh(ctx, input.Period)
	if err != nil {
		return nil, err
	}

	dismissed, err := uc.dismissals.Dismissed(ctx, input.UserID, input.Period)
	if err != nil {
		slog.Warn("Failed to load dismissed alerts",
			"userID", input.UserID.String(),
			"period", input.Period.Key(),
			"error", err,
		)
		dismissed = nil
	}

	alerts, err := ClassifyAndMerge(snapshot.Budget, snapshot.Due, dismissed)
	if err != nil {
		return nil, err
	}

	return &GetAlertBoardOutput{
		Period:      input.Period,
		PeriodLabel: input.Period.Label(),
		Alerts:      alerts,
		Counts:      CountBands(alerts),
		Unavailable: snapshot.Unavailable,
	}, nil
}
