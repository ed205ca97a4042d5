package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
)

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	result := r.db.WithContext(ctx).Create(model.InvestmentFromEntity(investment))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindByUserAndPeriod retrieves the user's investments for a month.
// A soft-deleted category is not preloaded, leaving the investment uncategorized.
func (r *investmentRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.InvestmentWithCategory, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, period.Month, period.Year).
		Order("created_at ASC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.InvestmentWithCategory, len(investmentModels))
	for i := range investmentModels {
		im := &investmentModels[i]
		item := &entity.InvestmentWithCategory{Investment: im.ToEntity()}
		if im.Category != nil {
			item.Category = im.Category.ToEntity()
		}
		items[i] = item
	}
	return items, nil
}

// Update updates an existing investment in the database.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	result := r.db.WithContext(ctx).Omit("Category").Save(model.InvestmentFromEntity(investment))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an investment from the database.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
