// Package entry contains use cases for income and expense entries.
package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Description string
	Type        entity.EntryType
	Amount      decimal.Decimal
	Date        time.Time
	DueDate     *time.Time
}

// CreateEntryUseCase handles entry creation.
type CreateEntryUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository, categoryRepo adapter.CategoryRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates and stores a new entry. Dates are kept as calendar days.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*entity.EntryWithCategory, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"description is required",
			domainerror.ErrEntryDescriptionRequired,
		)
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryType,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if input.DueDate != nil && input.Type != entity.EntryTypeExpense {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotPayable,
			"only expense entries can have a due date",
			domainerror.ErrEntryNotPayable,
		)
	}

	var category *entity.Category
	if input.CategoryID != nil {
		var err error
		category, err = uc.findEntryCategory(ctx, *input.CategoryID, input.UserID, input.Type)
		if err != nil {
			return nil, err
		}
	}

	var dueDate *time.Time
	if input.DueDate != nil {
		d := CalendarDay(*input.DueDate)
		dueDate = &d
	}

	e := entity.NewEntry(input.UserID, input.CategoryID, description, input.Type, input.Amount, CalendarDay(input.Date), dueDate)
	if err := uc.entryRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &entity.EntryWithCategory{
		Entry:    e,
		Category: category,
	}, nil
}

// findEntryCategory checks that the category belongs to the user and matches the entry type.
func (uc *CreateEntryUseCase) findEntryCategory(ctx context.Context, categoryID, userID uuid.UUID, entryType entity.EntryType) (*entity.Category, error) {
	invalid := domainerror.NewEntryError(
		domainerror.ErrCodeEntryCategoryInvalid,
		"category must be one of your categories of the same type",
		domainerror.ErrEntryCategoryInvalid,
	)

	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID || string(category.Type) != string(entryType) {
		return nil, invalid
	}
	return category, nil
}

// CalendarDay truncates t to its calendar date at UTC midnight.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
