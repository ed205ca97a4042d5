package rollup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

func TestGetDueDateAlertsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	bill := func(description string, due time.Time) *entity.Entry {
		return entity.NewEntry(userID, nil, description, entity.EntryTypeExpense, decimal.NewFromInt(100), due, &due)
	}

	paid := bill("Internet", date(2025, time.March, 14))
	paidAt := now
	paid.PaidAt = &paidAt

	entries := newFakeEntryRepo()
	entries.entries = []*entity.Entry{
		bill("Aluguel", date(2025, time.March, 12)),
		bill("Luz", date(2025, time.March, 15)),
		bill("Água", date(2025, time.March, 18)),
		bill("Cartão", date(2025, time.March, 21)),
		bill("Seguro", date(2025, time.March, 22)),
		bill("IPVA", date(2025, time.March, 23)),
		paid,
	}

	uc := NewGetDueDateAlertsUseCase(entries, fixedClock{now: now}, DefaultOptions())
	alerts, err := uc.Execute(context.Background(), GetDueDateAlertsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		description string
		dueType     entity.DueType
		level       entity.Level
		days        int
	}{
		{"Aluguel", entity.DueTypeOverdue, entity.LevelDanger, 3},
		{"Luz", entity.DueTypeUpcoming, entity.LevelWarning, 0},
		{"Água", entity.DueTypeUpcoming, entity.LevelWarning, 3},
		{"Cartão", entity.DueTypeUpcoming, entity.LevelInfo, 6},
		{"Seguro", entity.DueTypeUpcoming, entity.LevelInfo, 7},
	}

	if len(alerts) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(alerts), len(want), alerts)
	}
	for i, w := range want {
		a := alerts[i]
		if a.Description != w.description || a.Type != w.dueType || a.Level != w.level || a.Days != w.days {
			t.Errorf("alert %d = %+v, want %+v", i, a, w)
		}
	}
	if alerts[0].Message != "Aluguel está vencida há 3 dia(s)" {
		t.Errorf("overdue message = %q", alerts[0].Message)
	}
	if alerts[1].Message != "Luz vence hoje" {
		t.Errorf("today message = %q", alerts[1].Message)
	}
}

func TestGetDueDateAlertsUseCase_UsesLocationForToday(t *testing.T) {
	userID := uuid.New()
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on the 16th is still the 15th in BRT.
	now := time.Date(2025, time.March, 16, 1, 0, 0, 0, time.UTC)
	due := date(2025, time.March, 15)

	entries := newFakeEntryRepo()
	entries.entries = []*entity.Entry{
		entity.NewEntry(userID, nil, "Luz", entity.EntryTypeExpense, decimal.NewFromInt(80), due, &due),
	}

	uc := NewGetDueDateAlertsUseCase(entries, fixedClock{now: now}, Options{Location: saoPaulo})
	alerts, err := uc.Execute(context.Background(), GetDueDateAlertsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Type != entity.DueTypeUpcoming || alerts[0].Days != 0 {
		t.Errorf("alerts = %+v, want one alert due today", alerts)
	}
}
