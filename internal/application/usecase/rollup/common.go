// Package rollup contains the use cases that aggregate budgets and entries into the
// budget, due-date, trend and category report rollups.
package rollup

import (
	"fmt"
	"math"
	"time"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// Options tunes the aggregation windows.
type Options struct {
	// Location is the timezone that decides what "today" is for due date counts.
	Location *time.Location
	// DueWindowDays is how many days ahead an unpaid expense is reported as upcoming.
	DueWindowDays int
	// BaselineMonths is how many previous months form the trend baseline.
	BaselineMonths int
}

// DefaultOptions returns the default aggregation options.
func DefaultOptions() Options {
	return Options{
		Location:       time.UTC,
		DueWindowDays:  7,
		BaselineMonths: 3,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Location == nil {
		o.Location = d.Location
	}
	if o.DueWindowDays <= 0 {
		o.DueWindowDays = d.DueWindowDays
	}
	if o.BaselineMonths <= 0 {
		o.BaselineMonths = d.BaselineMonths
	}
	return o
}

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

// civilDate returns midnight UTC of t's calendar date in t's own location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil returns the calendar days from today (in loc) to the due date.
// Due dates are calendar dates and are not shifted into loc.
func daysUntil(now, due time.Time, loc *time.Location) int {
	return int(civilDate(due).Sub(civilDate(now.In(loc))).Hours() / 24)
}

// periodRange returns [start, end) of a period. Entry dates are calendar dates
// stored at midnight UTC, so month boundaries are taken in UTC.
func periodRange(period entity.Period) (time.Time, time.Time) {
	return period.Start(time.UTC), period.End(time.UTC)
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
