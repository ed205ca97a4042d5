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

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	return r.db.WithContext(ctx).Create(model.CreditCardFromEntity(card)).Error
}

func (r *creditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

func (r *creditCardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	return r.db.WithContext(ctx).Save(model.CreditCardFromEntity(card)).Error
}

func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CreditCardModel{}, "id = ?", id).Error
}
