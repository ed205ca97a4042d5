package signal

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

func reportRow(name string, planned, realized int64) entity.CategoryReportRow {
	return entity.CategoryReportRow{
		CategoryName: name,
		Planned:      decimal.NewFromInt(planned),
		Realized:     decimal.NewFromInt(realized),
	}
}

func TestComputeReportRows_Percentage(t *testing.T) {
	tests := []struct {
		name     string
		row      entity.CategoryReportRow
		expected float64
	}{
		{name: "zero planned yields zero", row: reportRow("a", 0, 50), expected: 0},
		{name: "under plan", row: reportRow("b", 200, 50), expected: 25},
		{name: "over plan", row: reportRow("c", 100, 130), expected: 130},
		{name: "nothing realized", row: reportRow("d", 100, 0), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ComputeReportRows(entity.EntryTypeExpense, []entity.CategoryReportRow{tt.row})
			if rows[0].Percentage != tt.expected {
				t.Errorf("percentage = %v, want %v", rows[0].Percentage, tt.expected)
			}
		})
	}
}

func TestIsFavorable(t *testing.T) {
	tests := []struct {
		name       string
		kind       entity.EntryType
		percentage float64
		expected   bool
	}{
		{name: "expense under plan", kind: entity.EntryTypeExpense, percentage: 90, expected: true},
		{name: "expense at plan", kind: entity.EntryTypeExpense, percentage: 100, expected: true},
		{name: "expense over plan", kind: entity.EntryTypeExpense, percentage: 110, expected: false},
		{name: "income under target", kind: entity.EntryTypeIncome, percentage: 90, expected: false},
		{name: "income at target", kind: entity.EntryTypeIncome, percentage: 100, expected: true},
		{name: "income over target", kind: entity.EntryTypeIncome, percentage: 110, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFavorable(tt.kind, tt.percentage); got != tt.expected {
				t.Errorf("IsFavorable(%s, %v) = %v, want %v", tt.kind, tt.percentage, got, tt.expected)
			}
		})
	}
}

func TestComputeReportRows_Favorable(t *testing.T) {
	rows := []entity.CategoryReportRow{reportRow("a", 100, 90), reportRow("b", 100, 110)}

	expense := ComputeReportRows(entity.EntryTypeExpense, rows)
	income := ComputeReportRows(entity.EntryTypeIncome, rows)

	if !expense[0].Favorable || expense[1].Favorable {
		t.Errorf("expense favorability = %v, %v", expense[0].Favorable, expense[1].Favorable)
	}
	if income[0].Favorable || !income[1].Favorable {
		t.Errorf("income favorability = %v, %v", income[0].Favorable, income[1].Favorable)
	}
	if rows[0].Favorable || rows[0].Percentage != 0 {
		t.Error("input rows must not be modified")
	}
}

func TestChartSlices(t *testing.T) {
	rows := []entity.CategoryReportRow{
		reportRow("Moradia", 1000, 900),
		reportRow("Lazer", 200, 0),
		reportRow("Mercado", 600, 650),
	}

	slices := ChartSlices(rows)
	if len(slices) != 2 {
		t.Fatalf("len = %d, want 2", len(slices))
	}
	if slices[0].Name != "Moradia" || slices[0].Color != ChartPalette[0] {
		t.Errorf("slice 0 = %+v", slices[0])
	}
	if slices[1].Name != "Mercado" || slices[1].Color != ChartPalette[1] {
		t.Errorf("slice 1 = %+v", slices[1])
	}
}

func TestChartSlices_PaletteWraps(t *testing.T) {
	var rows []entity.CategoryReportRow
	for i := 0; i < len(ChartPalette)+1; i++ {
		rows = append(rows, reportRow("x", 1, 1))
	}
	slices := ChartSlices(rows)
	if slices[len(ChartPalette)].Color != ChartPalette[0] {
		t.Errorf("color = %s, want %s", slices[len(ChartPalette)].Color, ChartPalette[0])
	}
}

func TestBarLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "short name kept", input: "Lazer", expected: "Lazer"},
		{name: "exactly ten runes kept", input: "Transporte", expected: "Transporte"},
		{name: "long name truncated", input: "Alimentação fora", expected: "Alimentaçã..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BarLabel(tt.input); got != tt.expected {
				t.Errorf("BarLabel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReportTotals(t *testing.T) {
	planned, realized := ReportTotals([]entity.CategoryReportRow{reportRow("a", 100, 40), reportRow("b", 50, 70)})
	if !planned.Equal(decimal.NewFromInt(150)) || !realized.Equal(decimal.NewFromInt(110)) {
		t.Errorf("totals = %s, %s", planned, realized)
	}
}
