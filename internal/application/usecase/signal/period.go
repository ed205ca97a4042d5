package signal

import (
	"fmt"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// validatePeriod rejects months outside 1..12 and years outside the accepted range.
func validatePeriod(period entity.Period) error {
	if !period.IsValid() {
		return domainerror.NewSignalError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("month must be 1-12 and year %d-%d", entity.MinPeriodYear, entity.MaxPeriodYear),
			domainerror.ErrInvalidSignalPeriod,
		)
	}
	return nil
}

func rollupUnavailable(what string, err error) error {
	return domainerror.NewSignalError(
		domainerror.ErrCodeRollupUnavailable,
		fmt.Sprintf("failed to fetch %s", what),
		fmt.Errorf("%w: %w", domainerror.ErrRollupUnavailable, err),
	)
}
