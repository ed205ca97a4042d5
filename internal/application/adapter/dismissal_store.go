// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// DismissalStore keeps the alert ids a user dismissed, scoped to one period at a time.
type DismissalStore interface {
	// Activate makes period the user's active period. Switching to a different
	// period discards the dismissals recorded for the previous one.
	Activate(ctx context.Context, userID uuid.UUID, period entity.Period) error

	// Dismiss records alertID as dismissed for (user, period). It is idempotent.
	Dismiss(ctx context.Context, userID uuid.UUID, period entity.Period, alertID string) error

	// Dismissed returns the set of dismissed alert ids for (user, period).
	Dismissed(ctx context.Context, userID uuid.UUID, period entity.Period) (map[string]struct{}, error)
}
