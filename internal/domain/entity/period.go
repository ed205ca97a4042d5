// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// MinPeriodYear and MaxPeriodYear bound the years accepted for a reporting period.
const (
	MinPeriodYear = 2000
	MaxPeriodYear = 2100
)

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// Period identifies a monthly reporting window.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod creates a Period for the given month and year.
func NewPeriod(month, year int) Period {
	return Period{Month: month, Year: year}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// IsValid reports whether the month is within 1..12 and the year within the accepted range.
func (p Period) IsValid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= MinPeriodYear && p.Year <= MaxPeriodYear
}

// Key returns a stable identifier for the period, e.g. "2025-03".
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Label returns a human-readable label, e.g. "Mar 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", monthAbbreviations[time.Month(p.Month)], p.Year)
}

// Start returns the first instant of the period in loc.
func (p Period) Start(loc *time.Location) time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
}

// End returns the first instant after the period in loc.
func (p Period) End(loc *time.Location) time.Time {
	return p.Start(loc).AddDate(0, 1, 0)
}

// AddMonths returns the period n months away (n may be negative).
func (p Period) AddMonths(n int) Period {
	t := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return PeriodOf(t)
}

// Previous returns the n periods before p, most recent first.
func (p Period) Previous(n int) []Period {
	periods := make([]Period, 0, n)
	for i := 1; i <= n; i++ {
		periods = append(periods, p.AddMonths(-i))
	}
	return periods
}
