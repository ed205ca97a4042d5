package signal

import (
	"cmp"
	"slices"

	"github.com/finance-tracker/signals/internal/domain/entity"
	"github.com/finance-tracker/signals/internal/domain/valueobject"
)

// Trend policy constants.
const (
	// MaterialChangeThreshold is the variation, in percentage points, a category must exceed to be reported.
	MaterialChangeThreshold = 10.0
	// TopTrendCount is how many categories each top list holds.
	TopTrendCount = 3
)

// TrendRow is a category trend ready for display.
type TrendRow struct {
	entity.CategoryTrend
	Label string `json:"label"`
}

// VariationSummary is an income or expense variation with its rendering tone.
type VariationSummary struct {
	Trend      entity.TrendDirection `json:"trend"`
	Percentage float64               `json:"percentage"`
	Label      string                `json:"label"`
	Tone       entity.Tone           `json:"tone"`
}

// TrendSummary is the result of ComputeTrendDeltas.
type TrendSummary struct {
	TopIncreases []TrendRow         `json:"top_increases"`
	TopDecreases []TrendRow         `json:"top_decreases"`
	Status       entity.TrendStatus `json:"status"`
	Income       VariationSummary   `json:"income"`
	Expense      VariationSummary   `json:"expense"`
}

// ComputeTrendDeltas derives the top increasing and decreasing categories and the
// tri-state trend status. A nil report yields a stable summary.
func ComputeTrendDeltas(report *entity.TrendReport) TrendSummary {
	summary := TrendSummary{
		TopIncreases: []TrendRow{},
		TopDecreases: []TrendRow{},
		Status:       entity.TrendStatusStable,
	}
	if report == nil {
		summary.Income = incomeSummary(entity.TrendVariations{IncomeTrend: entity.TrendStable})
		summary.Expense = expenseSummary(entity.TrendVariations{ExpenseTrend: entity.TrendStable})
		return summary
	}

	var increases, decreases []entity.CategoryTrend
	for _, trend := range report.CategoryTrends {
		switch {
		case trend.Variation > MaterialChangeThreshold:
			increases = append(increases, trend)
		case trend.Variation < -MaterialChangeThreshold:
			decreases = append(decreases, trend)
		}
	}

	slices.SortStableFunc(increases, func(a, b entity.CategoryTrend) int {
		return cmp.Compare(b.Variation, a.Variation)
	})
	slices.SortStableFunc(decreases, func(a, b entity.CategoryTrend) int {
		return cmp.Compare(a.Variation, b.Variation)
	})

	summary.TopIncreases = toTrendRows(increases)
	summary.TopDecreases = toTrendRows(decreases)

	switch {
	case len(summary.TopIncreases) > 0:
		summary.Status = entity.TrendStatusHasIncreases
	case len(summary.TopDecreases) > 0:
		summary.Status = entity.TrendStatusHasDecreases
	}

	summary.Income = incomeSummary(report.Variations)
	summary.Expense = expenseSummary(report.Variations)
	return summary
}

// IncomeTone is favorable for positive income changes.
func IncomeTone(percentage float64) entity.Tone {
	switch {
	case percentage > 0:
		return entity.TonePositive
	case percentage < 0:
		return entity.ToneNegative
	default:
		return entity.ToneNeutral
	}
}

// ExpenseTone is unfavorable for positive expense changes.
func ExpenseTone(percentage float64) entity.Tone {
	switch {
	case percentage > 0:
		return entity.ToneNegative
	case percentage < 0:
		return entity.TonePositive
	default:
		return entity.ToneNeutral
	}
}

func toTrendRows(trends []entity.CategoryTrend) []TrendRow {
	if len(trends) > TopTrendCount {
		trends = trends[:TopTrendCount]
	}
	rows := make([]TrendRow, 0, len(trends))
	for _, trend := range trends {
		rows = append(rows, TrendRow{
			CategoryTrend: trend,
			Label:         valueobject.FormatSignedPercent(trend.Variation, 0),
		})
	}
	return rows
}

func incomeSummary(v entity.TrendVariations) VariationSummary {
	return VariationSummary{
		Trend:      v.IncomeTrend,
		Percentage: v.IncomePercentage,
		Label:      valueobject.FormatSignedPercent(v.IncomePercentage, 1),
		Tone:       IncomeTone(v.IncomePercentage),
	}
}

func expenseSummary(v entity.TrendVariations) VariationSummary {
	return VariationSummary{
		Trend:      v.ExpenseTrend,
		Percentage: v.ExpensePercentage,
		Label:      valueobject.FormatSignedPercent(v.ExpensePercentage, 1),
		Tone:       ExpenseTone(v.ExpensePercentage),
	}
}
