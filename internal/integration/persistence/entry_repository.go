package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	result := r.db.WithContext(ctx).Omit("Category").Create(model.EntryFromEntity(entry))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserAndRange retrieves the user's entries dated within [start, end), newest first.
func (r *entryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.EntryWithCategory, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.EntryWithCategory, len(entryModels))
	for i := range entryModels {
		em := &entryModels[i]
		entries[i] = &entity.EntryWithCategory{Entry: em.ToEntity()}
		if em.Category != nil {
			entries[i].Category = em.Category.ToEntity()
		}
	}
	return entries, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	result := r.db.WithContext(ctx).Omit("Category").Save(model.EntryFromEntity(entry))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an entry from the database.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SumByCategory totals entries of the given type per category within [start, end).
func (r *entryRepository) SumByCategory(
	ctx context.Context,
	userID uuid.UUID,
	entryType entity.EntryType,
	start, end time.Time,
) ([]*adapter.CategoryAmount, error) {
	var results []struct {
		CategoryID   *uuid.UUID      `gorm:"column:category_id"`
		CategoryName *string         `gorm:"column:category_name"`
		Amount       decimal.Decimal `gorm:"column:amount"`
	}

	query := `
		SELECT
			e.category_id,
			c.name as category_name,
			COALESCE(SUM(e.amount), 0) as amount
		FROM entries e
		LEFT JOIN categories c ON e.category_id = c.id AND c.deleted_at IS NULL
		WHERE e.user_id = ?
			AND e.type = ?
			AND e.date >= ?
			AND e.date < ?
			AND e.deleted_at IS NULL
		GROUP BY e.category_id, c.name
		ORDER BY amount DESC
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, string(entryType), start, end).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum entries by category: %w", err)
	}

	amounts := make([]*adapter.CategoryAmount, len(results))
	for i, res := range results {
		amount := &adapter.CategoryAmount{
			CategoryID: res.CategoryID,
			Amount:     res.Amount,
		}
		if res.CategoryName != nil {
			amount.CategoryName = *res.CategoryName
		}
		amounts[i] = amount
	}
	return amounts, nil
}

// SumByType totals income and expense entries within [start, end).
func (r *entryRepository) SumByType(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.TypeTotals, error) {
	query := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end)

	var incomeResult struct {
		Total decimal.Decimal
	}
	err := query.Session(&gorm.Session{}).
		Where("type = ?", string(entity.EntryTypeIncome)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&incomeResult).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	var expenseResult struct {
		Total decimal.Decimal
	}
	err = query.Session(&gorm.Session{}).
		Where("type = ?", string(entity.EntryTypeExpense)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&expenseResult).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &adapter.TypeTotals{
		Income:  incomeResult.Total,
		Expense: expenseResult.Total,
	}, nil
}

// FindUnpaidWithDueDate retrieves unpaid expenses due before the given instant, earliest first.
func (r *entryRepository) FindUnpaidWithDueDate(ctx context.Context, userID uuid.UUID, before time.Time) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(entity.EntryTypeExpense)).
		Where("paid_at IS NULL AND due_date IS NOT NULL AND due_date < ?", before).
		Order("due_date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}
