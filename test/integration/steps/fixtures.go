package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/config"
	"github.com/finance-tracker/signals/internal/integration/adapters"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
	"github.com/finance-tracker/signals/test/integration/mock"
)

const fixtureDateLayout = "2006-01-02"

func (t *testContext) iAmAuthenticatedAsAUser() error {
	t.currentUserID = uuid.New()

	token, err := adapters.NewTokenService(testJWTSecret).
		GenerateAccessToken(context.Background(), t.currentUserID, "user@example.com")
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

// todayIs freezes the clock at noon UTC of the given date.
func (t *testContext) todayIs(date string) error {
	day, err := time.Parse(fixtureDateLayout, date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	if t.currentUserID == uuid.Nil {
		return fmt.Errorf("no authenticated user")
	}

	now := time.Now()
	category := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	t.categoryIDs[name] = category.ID
	return nil
}

func (t *testContext) aBudgetExistsForCategoryIn(planned, categoryName string, month, year int) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q not found", categoryName)
	}
	amount, err := decimal.NewFromString(planned)
	if err != nil {
		return err
	}

	now := time.Now()
	budget := &model.BudgetModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		CategoryID: categoryID,
		Planned:    amount,
		Month:      month,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (t *testContext) anEntryExistsOnForCategory(entryType, description, amount, date, categoryName string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q not found", categoryName)
	}
	day, err := time.Parse(fixtureDateLayout, date)
	if err != nil {
		return err
	}
	return t.createEntry(entryType, description, amount, day, &categoryID, nil)
}

func (t *testContext) anUnpaidExpenseIsDueOn(description, amount, dueDate string) error {
	due, err := time.Parse(fixtureDateLayout, dueDate)
	if err != nil {
		return err
	}
	return t.createEntry("expense", description, amount, due, nil, &due)
}

func (t *testContext) createEntry(entryType, description, amount string, date time.Time, categoryID *uuid.UUID, dueDate *time.Time) error {
	if t.currentUserID == uuid.Nil {
		return fmt.Errorf("no authenticated user")
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now()
	entry := &model.EntryModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		CategoryID:  categoryID,
		Description: description,
		Type:        entryType,
		Amount:      value,
		Date:        date,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	t.lastEntryID = entry.ID
	return nil
}

// theRollupSourceIsUpstream points the application at a fake upstream backend.
func (t *testContext) theRollupSourceIsUpstream() error {
	t.stopServer()
	if t.upstream == nil {
		t.upstream = mock.NewApiServer()
		t.upstream.Start()
	}
	t.source = config.SourceUpstream
	return nil
}

func (t *testContext) theUpstreamRespondsWith(method, path string, status int, body *godog.DocString) error {
	if t.upstream == nil {
		return fmt.Errorf("the rollup source is not upstream")
	}

	var decoded any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(body.Content)), &decoded); err != nil {
		return fmt.Errorf("invalid upstream body: %w", err)
	}
	t.upstream.SetResponse(strings.ToUpper(method), path, status, decoded)
	return nil
}

func (t *testContext) theUpstreamShouldHaveReceived(quantity int, method, path string) error {
	if t.upstream == nil {
		return fmt.Errorf("the rollup source is not upstream")
	}
	if count := t.upstream.RequestCount(method, path); count != quantity {
		return fmt.Errorf("expected %d %s requests to %s, got %d", quantity, method, path, count)
	}
	return nil
}

func (t *testContext) theUpstreamRequestShouldHaveQuery(method, path, key, expected string) error {
	if t.upstream == nil {
		return fmt.Errorf("the rollup source is not upstream")
	}
	queries := t.upstream.GetRequestQueries(method, path, 0)
	if queries == nil {
		return fmt.Errorf("no %s request to %s was received", method, path)
	}
	if actual := queries[key]; actual != expected {
		return fmt.Errorf("query '%s' expected '%s', got '%s'", key, expected, actual)
	}
	return nil
}

func (t *testContext) theUpstreamRequestShouldCarryABearerToken(method, path string) error {
	if t.upstream == nil {
		return fmt.Errorf("the rollup source is not upstream")
	}
	headers := t.upstream.GetRequestHeaders(method, path, 0)
	if headers == nil {
		return fmt.Errorf("no %s request to %s was received", method, path)
	}

	token, ok := strings.CutPrefix(headers["Authorization"], "Bearer ")
	if !ok || token == "" {
		return fmt.Errorf("expected a bearer token, got %q", headers["Authorization"])
	}
	claims, err := adapters.NewTokenService(testJWTSecret).ValidateAccessToken(context.Background(), token)
	if err != nil {
		return fmt.Errorf("upstream token is invalid: %w", err)
	}
	if claims.UserID != t.currentUserID {
		return fmt.Errorf("upstream token carries user %s, expected %s", claims.UserID, t.currentUserID)
	}
	return nil
}
