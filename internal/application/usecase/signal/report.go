package signal

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// BarLabelMaxRunes is the longest category name shown on a bar chart axis before truncation.
const BarLabelMaxRunes = 10

// ChartPalette holds the slice colors, assigned by position.
var ChartPalette = []string{
	"hsl(176, 61%, 40%)",
	"hsl(24, 95%, 53%)",
	"hsl(210, 40%, 60%)",
	"hsl(145, 60%, 45%)",
	"hsl(340, 75%, 55%)",
	"hsl(45, 93%, 47%)",
	"hsl(280, 65%, 60%)",
	"hsl(200, 70%, 50%)",
}

var hundred = decimal.NewFromInt(100)

// ChartSlice is one slice of a realized-amount pie chart.
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// BarRow is one planned vs realized pair of a bar chart.
type BarRow struct {
	Name     string          `json:"name"`
	Planned  decimal.Decimal `json:"planned"`
	Realized decimal.Decimal `json:"realized"`
}

// ComputeReportRows recomputes each row's percentage as realized/planned*100
// (0 when planned is 0) and classifies its favorability for kind.
func ComputeReportRows(kind entity.EntryType, rows []entity.CategoryReportRow) []entity.CategoryReportRow {
	out := make([]entity.CategoryReportRow, 0, len(rows))
	for _, row := range rows {
		row.Percentage = Percentage(row.Realized, row.Planned)
		row.Favorable = IsFavorable(kind, row.Percentage)
		out = append(out, row)
	}
	return out
}

// Percentage returns part/whole*100, or 0 when whole is 0.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// IsFavorable reports whether a report row is on the good side of its target:
// expenses at or under plan, income at or over plan.
func IsFavorable(kind entity.EntryType, percentage float64) bool {
	if kind == entity.EntryTypeIncome {
		return percentage >= 100
	}
	return percentage <= 100
}

// ChartSlices returns pie slices for rows with a positive realized amount,
// colored by position in the filtered list.
func ChartSlices(rows []entity.CategoryReportRow) []ChartSlice {
	pie := make([]ChartSlice, 0, len(rows))
	for _, row := range rows {
		if !row.Realized.IsPositive() {
			continue
		}
		pie = append(pie, ChartSlice{
			Name:  row.CategoryName,
			Value: row.Realized,
			Color: ChartPalette[len(pie)%len(ChartPalette)],
		})
	}
	return pie
}

// BarRows returns planned vs realized bars with truncated labels.
func BarRows(rows []entity.CategoryReportRow) []BarRow {
	bars := make([]BarRow, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, BarRow{
			Name:     BarLabel(row.CategoryName),
			Planned:  row.Planned,
			Realized: row.Realized,
		})
	}
	return bars
}

// BarLabel truncates name to BarLabelMaxRunes runes followed by "...".
func BarLabel(name string) string {
	if utf8.RuneCountInString(name) <= BarLabelMaxRunes {
		return name
	}
	return string([]rune(name)[:BarLabelMaxRunes]) + "..."
}

// ReportTotals sums planned and realized amounts.
func ReportTotals(rows []entity.CategoryReportRow) (planned, realized decimal.Decimal) {
	planned, realized = decimal.Zero, decimal.Zero
	for _, row := range rows {
		planned = planned.Add(row.Planned)
		realized = realized.Add(row.Realized)
	}
	return planned, realized
}
