package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert stores the planned amount for the budget's category and month.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BudgetModel
		result := tx.
			Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
				budget.UserID, budget.CategoryID, budget.Month, budget.Year).
			First(&existing)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			return tx.Omit("Category").Create(model.BudgetFromEntity(budget)).Error
		}

		budget.ID = existing.ID
		budget.CreatedAt = existing.CreatedAt
		budget.UpdatedAt = time.Now().UTC()
		return tx.Model(&model.BudgetModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"planned":    budget.Planned,
				"updated_at": budget.UpdatedAt,
			}).Error
	})
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndPeriod retrieves the user's budgets for a month with their categories.
// Budgets whose category was deleted are skipped.
func (r *budgetRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.BudgetWithCategory, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, period.Month, period.Year).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.BudgetWithCategory, 0, len(budgetModels))
	for i := range budgetModels {
		bm := &budgetModels[i]
		if bm.Category == nil {
			continue
		}
		items = append(items, &entity.BudgetWithCategory{
			Budget:   bm.ToEntity(),
			Category: bm.Category.ToEntity(),
		})
	}
	return items, nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
