package signal

import (
	"testing"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

func trendReport(variations ...float64) *entity.TrendReport {
	report := &entity.TrendReport{
		Variations: entity.TrendVariations{
			IncomeTrend:       entity.TrendUp,
			IncomePercentage:  12.5,
			ExpenseTrend:      entity.TrendUp,
			ExpensePercentage: 8.04,
		},
	}
	for i, v := range variations {
		report.CategoryTrends = append(report.CategoryTrends, entity.CategoryTrend{
			CategoryID:   string(rune('a' + i)),
			CategoryName: "cat-" + string(rune('a'+i)),
			Variation:    v,
		})
	}
	return report
}

func variationsOf(rows []TrendRow) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Variation)
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeTrendDeltas(t *testing.T) {
	tests := []struct {
		name          string
		report        *entity.TrendReport
		wantIncreases []float64
		wantDecreases []float64
		wantStatus    entity.TrendStatus
	}{
		{
			name:          "mixed variations",
			report:        trendReport(25, -15, 5, 30, -40),
			wantIncreases: []float64{30, 25},
			wantDecreases: []float64{-40, -15},
			wantStatus:    entity.TrendStatusHasIncreases,
		},
		{
			name:          "all within threshold",
			report:        trendReport(10, -10, 0, 9.9, -3),
			wantIncreases: []float64{},
			wantDecreases: []float64{},
			wantStatus:    entity.TrendStatusStable,
		},
		{
			name:          "only decreases",
			report:        trendReport(-11, 2, -50),
			wantIncreases: []float64{},
			wantDecreases: []float64{-50, -11},
			wantStatus:    entity.TrendStatusHasDecreases,
		},
		{
			name:          "keeps top three",
			report:        trendReport(11, 50, 20, 40, 30, -20, -30, -40, -50),
			wantIncreases: []float64{50, 40, 30},
			wantDecreases: []float64{-50, -40, -30},
			wantStatus:    entity.TrendStatusHasIncreases,
		},
		{
			name:          "empty category trends",
			report:        trendReport(),
			wantIncreases: []float64{},
			wantDecreases: []float64{},
			wantStatus:    entity.TrendStatusStable,
		},
		{
			name:          "nil report",
			report:        nil,
			wantIncreases: []float64{},
			wantDecreases: []float64{},
			wantStatus:    entity.TrendStatusStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeTrendDeltas(tt.report)

			if got := variationsOf(summary.TopIncreases); !equalFloats(got, tt.wantIncreases) {
				t.Errorf("top increases = %v, want %v", got, tt.wantIncreases)
			}
			if got := variationsOf(summary.TopDecreases); !equalFloats(got, tt.wantDecreases) {
				t.Errorf("top decreases = %v, want %v", got, tt.wantDecreases)
			}
			if summary.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", summary.Status, tt.wantStatus)
			}
		})
	}
}

func TestComputeTrendDeltas_TiesKeepInputOrder(t *testing.T) {
	report := trendReport(20, 20, 20)
	summary := ComputeTrendDeltas(report)

	for i, row := range summary.TopIncreases {
		if row.CategoryID != report.CategoryTrends[i].CategoryID {
			t.Errorf("row %d = %s, want %s", i, row.CategoryID, report.CategoryTrends[i].CategoryID)
		}
	}
}

func TestComputeTrendDeltas_Labels(t *testing.T) {
	summary := ComputeTrendDeltas(trendReport(30.4, -40.6))

	if summary.TopIncreases[0].Label != "+30%" {
		t.Errorf("increase label = %q", summary.TopIncreases[0].Label)
	}
	if summary.TopDecreases[0].Label != "-41%" {
		t.Errorf("decrease label = %q", summary.TopDecreases[0].Label)
	}
	if summary.Income.Label != "+12.5%" {
		t.Errorf("income label = %q", summary.Income.Label)
	}
	if summary.Expense.Label != "+8.0%" {
		t.Errorf("expense label = %q", summary.Expense.Label)
	}
}

func TestComputeTrendDeltas_OppositePolarity(t *testing.T) {
	summary := ComputeTrendDeltas(trendReport())

	if summary.Income.Tone != entity.TonePositive {
		t.Errorf("income up tone = %q, want positive", summary.Income.Tone)
	}
	if summary.Expense.Tone != entity.ToneNegative {
		t.Errorf("expense up tone = %q, want negative", summary.Expense.Tone)
	}
	if summary.Income.Trend != entity.TrendUp || summary.Expense.Trend != entity.TrendUp {
		t.Errorf("trend enums not passed through: %+v %+v", summary.Income, summary.Expense)
	}
}

func TestTones(t *testing.T) {
	tests := []struct {
		name        string
		percentage  float64
		wantIncome  entity.Tone
		wantExpense entity.Tone
	}{
		{name: "increase", percentage: 5, wantIncome: entity.TonePositive, wantExpense: entity.ToneNegative},
		{name: "decrease", percentage: -5, wantIncome: entity.ToneNegative, wantExpense: entity.TonePositive},
		{name: "flat", percentage: 0, wantIncome: entity.ToneNeutral, wantExpense: entity.ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IncomeTone(tt.percentage); got != tt.wantIncome {
				t.Errorf("IncomeTone() = %q, want %q", got, tt.wantIncome)
			}
			if got := ExpenseTone(tt.percentage); got != tt.wantExpense {
				t.Errorf("ExpenseTone() = %q, want %q", got, tt.wantExpense)
			}
		})
	}
}
